package logwriter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// fakePush records pushed bodies and fails the first failures calls.
type fakePush struct {
	mu       sync.Mutex
	bodies   []string
	failures int
	calls    int
}

func (f *fakePush) Push(ctx context.Context, repository string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return errors.New("push refused")
	}
	f.bodies = append(f.bodies, string(body))
	return nil
}

func (f *fakePush) pushed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func (f *fakePush) Close() error                            { return nil }
func (f *fakePush) SetBaseURL(string)                       {}
func (f *fakePush) SetAPIKey(string)                        {}
func (f *fakePush) SetTimeout(time.Duration)                {}
func (f *fakePush) AddHeader(string, string)                {}
func (f *fakePush) SetCompression(types.CompressionAlgorithm) {}
func (f *fakePush) ConnectLogger(...types.Logger)           {}
func (f *fakePush) ConnectSensor(...types.Sensor)           {}
func (f *fakePush) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}
func (f *fakePush) SetComponentMetadata(string, string) {}

// fakeStorage captures uploads and fails the first failures presign calls.
type fakeStorage struct {
	mu       sync.Mutex
	uploads  map[string][]byte
	failures int
	calls    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: map[string][]byte{}}
}

func (f *fakeStorage) GetUploadURL(ctx context.Context, key string, mimeType string, size int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("presign refused")
	}
	return "signed://" + key, nil
}

func (f *fakeStorage) UploadToSignedURL(ctx context.Context, url string, data []byte, mimeType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[strings.TrimPrefix(url, "signed://")] = append([]byte(nil), data...)
	return nil
}

func (f *fakeStorage) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeStorage) SetBucket(string)             {}
func (f *fakeStorage) SetURLTTL(time.Duration)      {}
func (f *fakeStorage) ConnectLogger(...types.Logger) {}
func (f *fakeStorage) ConnectSensor(...types.Sensor) {}
func (f *fakeStorage) GetComponentMetadata() types.ComponentMetadata {
	return types.ComponentMetadata{}
}
func (f *fakeStorage) SetComponentMetadata(string, string) {}

func newTestWriter(t *testing.T, push *fakePush, storage *fakeStorage, options ...types.Option[types.LogWriter]) *LogWriter {
	t.Helper()
	base := []types.Option[types.LogWriter]{
		WithAutoFlush(false),
		WithRepository("repo"),
		WithScratchDir(t.TempDir()),
	}
	if push != nil {
		base = append(base, WithPushClient(push))
	}
	if storage != nil {
		base = append(base, WithStorageClient(storage))
	}
	lw := NewLogWriter(append(base, options...)...).(*LogWriter)
	t.Cleanup(func() { lw.Stop() })
	return lw
}

func record(id string, filler int) *types.CommitLog {
	payload := map[string]any{}
	if filler > 0 {
		payload["content"] = strings.Repeat("x", filler)
	}
	return commitlog.New(types.EntityTrace, id, types.ActionUpdate, payload)
}

func TestCommitRoutesSmallRecordToMainQueue(t *testing.T) {
	lw := newTestWriter(t, &fakePush{}, nil)
	if err := lw.Commit(record("trace-1", 10)); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if lw.mainQueue.Len() != 1 || lw.storageQueue.Len() != 0 {
		t.Fatalf("queue lens = main %d storage %d", lw.mainQueue.Len(), lw.storageQueue.Len())
	}
}

func TestCommitThresholdRouting(t *testing.T) {
	lw := newTestWriter(t, &fakePush{}, nil)

	// Measure serialization overhead so the filler can land the line exactly
	// one byte under and one byte over the routing threshold.
	probe := record("trace-1", 1000)
	line, err := commitlog.Serialize(probe)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	overhead := len(line) - 1000

	under := record("trace-1", largeLogThreshold-overhead)
	if err := lw.Commit(under); err != nil {
		t.Fatalf("Commit under: %v", err)
	}
	if lw.mainQueue.Len() != 1 || lw.storageQueue.Len() != 0 {
		t.Fatalf("at threshold: main %d storage %d", lw.mainQueue.Len(), lw.storageQueue.Len())
	}

	over := record("trace-1", largeLogThreshold-overhead+1)
	if err := lw.Commit(over); err != nil {
		t.Fatalf("Commit over: %v", err)
	}
	if lw.mainQueue.Len() != 1 || lw.storageQueue.Len() != 1 {
		t.Fatalf("over threshold: main %d storage %d", lw.mainQueue.Len(), lw.storageQueue.Len())
	}
}

func TestCommitInvalidIdentifierLenient(t *testing.T) {
	lw := newTestWriter(t, &fakePush{}, nil)
	if err := lw.Commit(record("bad id!", 10)); err != nil {
		t.Fatalf("lenient Commit returned error: %v", err)
	}
	if depth := lw.QueueDepth(); depth != 0 {
		t.Fatalf("depth = %d, want 0 after drop", depth)
	}
}

func TestCommitInvalidIdentifierStrict(t *testing.T) {
	lw := newTestWriter(t, &fakePush{}, nil, WithRaiseExceptions(true))
	err := lw.Commit(record("bad id!", 10))
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("err = %v, want ErrInvalidIdentifier", err)
	}
}

func TestCommitBackpressureTriggersFlush(t *testing.T) {
	push := &fakePush{}
	lw := newTestWriter(t, push, nil, WithMaxInMemoryLogs(5))

	for i := 0; i < 5; i++ {
		if err := lw.Commit(record("trace-1", 10)); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(push.pushed()) > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("backpressure flush never pushed")
}

func TestFlushDeliversQueuedRecords(t *testing.T) {
	push := &fakePush{}
	lw := newTestWriter(t, push, nil)

	lw.Commit(record("trace-1", 10))
	lw.Commit(record("trace-2", 10))
	lw.Flush()

	bodies := push.pushed()
	if len(bodies) != 1 {
		t.Fatalf("pushes = %d, want 1", len(bodies))
	}
	lines := strings.Split(bodies[0], "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TRACE{") {
		t.Fatalf("line shape = %q", lines[0])
	}
	if lw.QueueDepth() != 0 {
		t.Fatalf("depth after flush = %d", lw.QueueDepth())
	}
}

func TestStopRunsFinalFlush(t *testing.T) {
	push := &fakePush{}
	lw := newTestWriter(t, push, nil)
	lw.Commit(record("trace-1", 10))
	if err := lw.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if len(push.pushed()) != 1 {
		t.Fatalf("pushes = %d, want 1 from final flush", len(push.pushed()))
	}
}
