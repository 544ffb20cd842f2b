package emitter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// Session groups the traces of one user interaction.
type Session struct {
	emitter
}

// NewSession starts a session and emits its create record.
func NewSession(writer types.LogWriter, cfg Config) (*Session, error) {
	e, err := create(writer, types.EntitySession, cfg, nil)
	if err != nil {
		return nil, err
	}
	return &Session{emitter: e}, nil
}

// NewTrace starts a trace inside the session.
func (s *Session) NewTrace(cfg Config) (*Trace, error) {
	return newTrace(s.writer, cfg, map[string]any{"sessionId": s.id})
}

// Feedback records an end-user rating for the session.
func (s *Session) Feedback(score float64, comment string) error {
	payload := map[string]any{"score": score}
	if comment != "" {
		payload["comment"] = comment
	}
	return s.commit(types.ActionFeedback, payload)
}
