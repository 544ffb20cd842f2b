package internallogger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/filament/pkg/internal/internallogger"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestLoggerLevels(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.WithLevel(types.WarnLevel))

	if got := logger.GetLevel(); got != types.WarnLevel {
		t.Fatalf("GetLevel() = %v, want WarnLevel", got)
	}

	logger.SetLevel(types.DebugLevel)
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("after SetLevel, GetLevel() = %v, want DebugLevel", got)
	}
}

func TestFileSinkWritesEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sdk.log")

	logger := internallogger.NewLogger(internallogger.WithLevel(types.DebugLevel))
	err := logger.AddSink("file", types.SinkConfig{
		Type:   string(types.FileSink),
		Config: map[string]interface{}{"path": path},
	})
	if err != nil {
		t.Fatalf("AddSink() error: %v", err)
	}

	logger.Info("flush cycle complete", "chunks", 3, "component", types.ComponentMetadata{ID: "w1", Type: "LOG_WRITER"})
	_ = logger.Flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sink file: %v", err)
	}
	if !strings.Contains(string(data), "flush cycle complete") {
		t.Fatalf("sink file missing entry, got: %s", data)
	}

	sinks, _ := logger.ListSinks()
	if len(sinks) != 1 || sinks[0] != "file" {
		t.Fatalf("ListSinks() = %v, want [file]", sinks)
	}

	if err := logger.RemoveSink("file"); err != nil {
		t.Fatalf("RemoveSink() error: %v", err)
	}
	if err := logger.RemoveSink("file"); err == nil {
		t.Fatalf("expected error removing absent sink")
	}
}

func TestAddSinkRejectsUnknownType(t *testing.T) {
	logger := internallogger.NewLogger()
	if err := logger.AddSink("x", types.SinkConfig{Type: "network"}); err == nil {
		t.Fatalf("expected error for unsupported sink type")
	}
}
