package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ToolCall is one tool or function invocation made on the model's behalf.
type ToolCall struct {
	emitter
}

func newToolCall(writer types.LogWriter, cfg Config, extra map[string]any) (*ToolCall, error) {
	e, err := create(writer, types.EntityToolCall, cfg, extra)
	if err != nil {
		return nil, err
	}
	return &ToolCall{emitter: e}, nil
}

// SetArguments records the arguments the tool was invoked with.
func (tc *ToolCall) SetArguments(args string) error {
	return tc.commit(types.ActionUpdate, map[string]any{"arguments": args})
}

// SetResult records the tool's output.
func (tc *ToolCall) SetResult(result string) error {
	return tc.commit(types.ActionResult, map[string]any{"result": result})
}
