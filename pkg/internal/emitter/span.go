package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Span is a named step inside a trace. Spans nest.
type Span struct {
	emitter
}

func newSpan(writer types.LogWriter, cfg Config, extra map[string]any) (*Span, error) {
	e, err := create(writer, types.EntitySpan, cfg, extra)
	if err != nil {
		return nil, err
	}
	return &Span{emitter: e}, nil
}

// NewSpan starts a child span.
func (s *Span) NewSpan(cfg Config) (*Span, error) {
	return newSpan(s.writer, cfg, map[string]any{"spanId": s.id})
}

// NewGeneration starts a model call under the span.
func (s *Span) NewGeneration(cfg Config) (*Generation, error) {
	return newGeneration(s.writer, cfg, map[string]any{"spanId": s.id})
}

// NewToolCall starts a tool invocation under the span.
func (s *Span) NewToolCall(cfg Config) (*ToolCall, error) {
	return newToolCall(s.writer, cfg, map[string]any{"spanId": s.id})
}

// NewRetrieval starts a retrieval under the span.
func (s *Span) NewRetrieval(cfg Config) (*Retrieval, error) {
	return newRetrieval(s.writer, cfg, map[string]any{"spanId": s.id})
}
