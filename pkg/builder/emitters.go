package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/emitter"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// Entity handle aliases. Handles are created from a writer and log through it;
// they hold no state beyond their id.

type Session = emitter.Session

type Trace = emitter.Trace

type Span = emitter.Span

type Generation = emitter.Generation

type ToolCall = emitter.ToolCall

type Retrieval = emitter.Retrieval

type EmitterConfig = emitter.Config

type ErrorInfo = emitter.ErrorInfo

// NewSession starts a session on the given writer.
func NewSession(writer types.LogWriter, cfg EmitterConfig) (*Session, error) {
	return emitter.NewSession(writer, cfg)
}

// NewTrace starts a standalone trace on the given writer.
func NewTrace(writer types.LogWriter, cfg EmitterConfig) (*Trace, error) {
	return emitter.NewTrace(writer, cfg)
}
