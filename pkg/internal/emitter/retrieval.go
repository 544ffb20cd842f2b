package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Retrieval is one document lookup feeding a model call.
type Retrieval struct {
	emitter
}

func newRetrieval(writer types.LogWriter, cfg Config, extra map[string]any) (*Retrieval, error) {
	e, err := create(writer, types.EntityRetrieval, cfg, extra)
	if err != nil {
		return nil, err
	}
	return &Retrieval{emitter: e}, nil
}

// SetInput records the retrieval query.
func (r *Retrieval) SetInput(query string) error {
	return r.commit(types.ActionUpdate, map[string]any{"query": query})
}

// SetOutput records the retrieved documents.
func (r *Retrieval) SetOutput(docs []string) error {
	return r.commit(types.ActionResult, map[string]any{"docs": docs})
}
