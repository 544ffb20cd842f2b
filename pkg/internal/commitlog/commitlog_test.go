package commitlog_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestSerializeLineShape(t *testing.T) {
	log := &types.CommitLog{
		EntityType: types.EntityTrace,
		EntityID:   "trace-1",
		Action:     types.ActionCreate,
		Payload:    map[string]any{"name": "checkout", "sessionId": "s-9"},
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	line, err := commitlog.Serialize(log)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	if !bytes.HasPrefix(line, []byte("TRACE{")) {
		t.Fatalf("line does not start with entity tag: %s", line)
	}
	if bytes.ContainsRune(line, '\n') {
		t.Fatalf("serialized line contains a newline: %s", line)
	}

	var body struct {
		ID        string         `json:"id"`
		Action    string         `json:"action"`
		Data      map[string]any `json:"data"`
		Timestamp string         `json:"timestamp"`
	}
	if err := json.Unmarshal(line[len("TRACE"):], &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body.ID != "trace-1" || body.Action != "create" {
		t.Fatalf("body = %+v", body)
	}
	if body.Data["name"] != "checkout" {
		t.Fatalf("payload lost: %+v", body.Data)
	}
	if body.Timestamp != "2026-03-14T09:26:53Z" {
		t.Fatalf("timestamp = %q", body.Timestamp)
	}
}

func TestSerializeAllJoinsWithNewlines(t *testing.T) {
	logs := []*types.CommitLog{
		commitlog.New(types.EntitySession, "s1", types.ActionCreate, nil),
		commitlog.New(types.EntitySession, "s1", types.ActionEnd, nil),
	}

	body, err := commitlog.SerializeAll(logs)
	if err != nil {
		t.Fatalf("SerializeAll() error: %v", err)
	}

	lines := strings.Split(string(body), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "SESSION{") {
			t.Fatalf("unexpected line: %s", line)
		}
	}
}

func TestAttachmentStorageKey(t *testing.T) {
	key := commitlog.AttachmentStorageKey("repo-1", types.EntityGeneration, "g-1", "att-7")
	want := "repo-1/GENERATION/g-1/files/original/att-7"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}

func TestLargeLogStorageKeyScopedToRepository(t *testing.T) {
	a := commitlog.LargeLogStorageKey("repo-1")
	b := commitlog.LargeLogStorageKey("repo-1")

	if !strings.HasPrefix(a, "repo-1/large-logs/") || !strings.HasSuffix(a, ".log") {
		t.Fatalf("key shape: %q", a)
	}
	if a == b {
		t.Fatalf("keys must be unique, got %q twice", a)
	}
}
