package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Trace is one end-to-end operation: a request, an agent run, a job.
type Trace struct {
	emitter
}

// NewTrace starts a standalone trace and emits its create record.
func NewTrace(writer types.LogWriter, cfg Config) (*Trace, error) {
	return newTrace(writer, cfg, nil)
}

func newTrace(writer types.LogWriter, cfg Config, extra map[string]any) (*Trace, error) {
	e, err := create(writer, types.EntityTrace, cfg, extra)
	if err != nil {
		return nil, err
	}
	return &Trace{emitter: e}, nil
}

// SetInput records the trace's input.
func (t *Trace) SetInput(input string) error {
	return t.commit(types.ActionUpdate, map[string]any{"input": input})
}

// SetOutput records the trace's output.
func (t *Trace) SetOutput(output string) error {
	return t.commit(types.ActionUpdate, map[string]any{"output": output})
}

// NewSpan starts a span under the trace.
func (t *Trace) NewSpan(cfg Config) (*Span, error) {
	return newSpan(t.writer, cfg, map[string]any{"traceId": t.id})
}

// NewGeneration starts a model call under the trace.
func (t *Trace) NewGeneration(cfg Config) (*Generation, error) {
	return newGeneration(t.writer, cfg, map[string]any{"traceId": t.id})
}

// NewToolCall starts a tool invocation under the trace.
func (t *Trace) NewToolCall(cfg Config) (*ToolCall, error) {
	return newToolCall(t.writer, cfg, map[string]any{"traceId": t.id})
}

// NewRetrieval starts a retrieval under the trace.
func (t *Trace) NewRetrieval(cfg Config) (*Retrieval, error) {
	return newRetrieval(t.writer, cfg, map[string]any{"traceId": t.id})
}
