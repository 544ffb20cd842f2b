package emitter_test

import (
	"testing"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/emitter"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// captureWriter records every committed log in order.
type captureWriter struct {
	logs []*types.CommitLog
	err  error
}

func (w *captureWriter) Commit(log *types.CommitLog) error {
	if w.err != nil {
		return w.err
	}
	w.logs = append(w.logs, log)
	return nil
}

func (w *captureWriter) Flush()                                  {}
func (w *captureWriter) Stop() error                             { return nil }
func (w *captureWriter) QueueDepth() int                         { return len(w.logs) }
func (w *captureWriter) SetBaseURL(string)                       {}
func (w *captureWriter) SetAPIKey(string)                        {}
func (w *captureWriter) SetRepository(string)                    {}
func (w *captureWriter) GetRepository() string                   { return "repo" }
func (w *captureWriter) SetAutoFlush(bool)                       {}
func (w *captureWriter) SetFlushInterval(time.Duration)          {}
func (w *captureWriter) SetMaxInMemoryLogs(int)                  {}
func (w *captureWriter) SetRaiseExceptions(bool)                 {}
func (w *captureWriter) SetScratchDir(string)                    {}
func (w *captureWriter) SetCompression(types.CompressionAlgorithm) {}
func (w *captureWriter) SetPushClient(types.PushClient)          {}
func (w *captureWriter) SetStorageClient(types.StorageClient)    {}
func (w *captureWriter) SetMirrorSink(types.BatchSink)           {}
func (w *captureWriter) ConnectLogger(...types.Logger)           {}
func (w *captureWriter) ConnectSensor(...types.Sensor)           {}
func (w *captureWriter) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}
func (w *captureWriter) SetComponentMetadata(name string, id string) {}

func (w *captureWriter) last() *types.CommitLog {
	return w.logs[len(w.logs)-1]
}

func TestSessionLifecycle(t *testing.T) {
	w := &captureWriter{}
	sess, err := emitter.NewSession(w, emitter.Config{ID: "sess-1", Name: "support chat"})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.ID() != "sess-1" {
		t.Fatalf("id = %q", sess.ID())
	}
	created := w.last()
	if created.EntityType != types.EntitySession || created.Action != types.ActionCreate {
		t.Fatalf("create record = %s/%s", created.EntityType, created.Action)
	}
	if created.Payload["name"] != "support chat" {
		t.Errorf("name payload = %v", created.Payload["name"])
	}

	if err := sess.Feedback(0.9, "helpful"); err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	fb := w.last()
	if fb.Action != types.ActionFeedback || fb.Payload["score"] != 0.9 {
		t.Fatalf("feedback record = %s %v", fb.Action, fb.Payload)
	}

	if err := sess.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if w.last().Action != types.ActionEnd {
		t.Fatalf("end action = %s", w.last().Action)
	}
}

func TestTraceHierarchy(t *testing.T) {
	w := &captureWriter{}
	sess, _ := emitter.NewSession(w, emitter.Config{ID: "sess-1"})
	trace, err := sess.NewTrace(emitter.Config{ID: "trace-1"})
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	if got := w.last().Payload["sessionId"]; got != "sess-1" {
		t.Fatalf("sessionId = %v", got)
	}

	gen, err := trace.NewGeneration(emitter.Config{ID: "gen-1", Name: "answer"})
	if err != nil {
		t.Fatalf("NewGeneration: %v", err)
	}
	if got := w.last().Payload["traceId"]; got != "trace-1" {
		t.Fatalf("traceId = %v", got)
	}

	gen.SetModel("gpt-4o")
	gen.AddMessage("user", "hello")
	gen.SetResult(map[string]any{"text": "hi"})
	result := w.last()
	if result.EntityType != types.EntityGeneration || result.Action != types.ActionResult {
		t.Fatalf("result record = %s/%s", result.EntityType, result.Action)
	}

	span, err := trace.NewSpan(emitter.Config{ID: "span-1"})
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	child, err := span.NewSpan(emitter.Config{ID: "span-2"})
	if err != nil {
		t.Fatalf("nested NewSpan: %v", err)
	}
	if got := w.last().Payload["spanId"]; got != "span-1" {
		t.Fatalf("nested span parent = %v", got)
	}
	_ = child
}

func TestCommonOperations(t *testing.T) {
	w := &captureWriter{}
	trace, _ := emitter.NewTrace(w, emitter.Config{ID: "trace-1"})

	trace.AddTag("env", "prod")
	tag := w.last()
	if tag.Action != types.ActionAddTag || tag.Payload["key"] != "env" || tag.Payload["value"] != "prod" {
		t.Fatalf("tag record = %s %v", tag.Action, tag.Payload)
	}

	trace.AddMetadata(map[string]any{"tenant": "acme"})
	if w.last().Action != types.ActionAddMetadata {
		t.Fatalf("metadata action = %s", w.last().Action)
	}

	trace.Event("evt-1", "cache-miss", map[string]string{"layer": "l2"})
	evt := w.last()
	if evt.Action != types.ActionEvent || evt.Payload["name"] != "cache-miss" {
		t.Fatalf("event record = %s %v", evt.Action, evt.Payload)
	}

	trace.SetError(emitter.ErrorInfo{Message: "boom", Type: "ProviderError"})
	errRec := w.last()
	if errRec.Action != types.ActionError || errRec.Payload["message"] != "boom" {
		t.Fatalf("error record = %s %v", errRec.Action, errRec.Payload)
	}
}

func TestAddAttachmentRoutesThroughWriter(t *testing.T) {
	w := &captureWriter{}
	trace, _ := emitter.NewTrace(w, emitter.Config{ID: "trace-1"})

	att := types.DataAttachment{
		AttachmentKey: types.AttachmentKey{ID: "att-1", Name: "dump.txt", MimeType: "text/plain"},
		Data:          []byte("contents"),
	}
	if err := trace.AddAttachment(att); err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}
	rec := w.last()
	if rec.Action != types.ActionUploadAttachment {
		t.Fatalf("action = %s, want upload-attachment", rec.Action)
	}
	if rec.Payload["attachmentId"] != "att-1" {
		t.Fatalf("attachmentId = %v", rec.Payload["attachmentId"])
	}
	if _, ok := rec.Payload["attachment"].(types.DataAttachment); !ok {
		t.Fatalf("attachment payload type = %T", rec.Payload["attachment"])
	}
}
