package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Generation is one model call: prompt in, completion out.
type Generation struct {
	emitter
}

func newGeneration(writer types.LogWriter, cfg Config, extra map[string]any) (*Generation, error) {
	e, err := create(writer, types.EntityGeneration, cfg, extra)
	if err != nil {
		return nil, err
	}
	return &Generation{emitter: e}, nil
}

// SetModel records the model the call targets.
func (g *Generation) SetModel(model string) error {
	return g.commit(types.ActionUpdate, map[string]any{"model": model})
}

// SetModelParameters records sampling and decoding parameters.
func (g *Generation) SetModelParameters(params map[string]any) error {
	return g.commit(types.ActionUpdate, map[string]any{"modelParameters": params})
}

// AddMessage appends one prompt message.
func (g *Generation) AddMessage(role string, content string) error {
	return g.commit(types.ActionUpdate, map[string]any{
		"message": map[string]any{"role": role, "content": content},
	})
}

// SetResult records the completion.
func (g *Generation) SetResult(result any) error {
	return g.commit(types.ActionResult, map[string]any{"result": result})
}
