package logwriter

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// serverlessEnvVars mark runtimes whose filesystems are ephemeral or
// read-only; fallback persistence is pointless there.
var serverlessEnvVars = []string{
	"AWS_LAMBDA_FUNCTION_NAME",
	"FUNCTION_TARGET",
	"VERCEL",
}

// fallbackDir is the per-writer spill directory. Writer ids are unique per
// instance, so concurrent writers never touch each other's files.
func (lw *LogWriter) fallbackDir() string {
	lw.configLock.Lock()
	scratch := lw.scratchDir
	lw.configLock.Unlock()
	if scratch == "" {
		scratch = os.TempDir()
	}
	return filepath.Join(scratch, fallbackDirName, lw.writerID)
}

// fallbackUsable reports whether the spill tier is available: not a serverless
// runtime, and the spill directory actually accepts writes.
func (lw *LogWriter) fallbackUsable() bool {
	for _, name := range serverlessEnvVars {
		if os.Getenv(name) != "" {
			return false
		}
	}
	dir := lw.fallbackDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".probe")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}

// persistChunks writes one timestamped NDJSON file per undelivered chunk.
func (lw *LogWriter) persistChunks(chunks [][]string) {
	dir := lw.fallbackDir()
	for i, chunk := range chunks {
		// The index keeps names distinct when two chunks land on the same tick.
		name := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.Itoa(i) + ".ndjson"
		path := filepath.Join(dir, name)
		body := joinLines(chunk)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			lw.NotifyLoggers(types.ErrorLevel, "fallback persist failed",
				"component", lw.componentMetadata, "path", path, "records", len(chunk), "error", err)
			lw.queueLock.Lock()
			lw.mainQueue.EnqueueAll(chunk)
			lw.queueLock.Unlock()
			continue
		}
		lw.NotifyLoggers(types.WarnLevel, "undelivered batch persisted",
			"component", lw.componentMetadata, "path", path, "records", len(chunk))
		for _, sensor := range lw.snapshotSensors() {
			sensor.InvokeOnFallbackPersist(lw.componentMetadata, path, len(chunk))
		}
	}
}

// replayFallback re-delivers spilled files oldest-first, deleting each only
// after a successful push. A push failure leaves the file and stops the pass;
// the next flush tries again. Returns whether the backlog is clear, so the
// caller can hold fresh records behind older spilled ones.
func (lw *LogWriter) replayFallback() bool {
	if !lw.fallbackUsable() {
		return true
	}
	dir := lw.fallbackDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".ndjson" {
			names = append(names, entry.Name())
		}
	}
	// UnixNano names share a digit width, so lexical order is chronological.
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		body, err := os.ReadFile(path)
		if err != nil {
			lw.NotifyLoggers(types.ErrorLevel, "fallback read failed",
				"component", lw.componentMetadata, "path", path, "error", err)
			continue
		}
		if err := lw.push(body); err != nil {
			lw.NotifyLoggers(types.WarnLevel, "fallback replay failed, keeping file",
				"component", lw.componentMetadata, "path", path, "error", err)
			return false
		}
		os.Remove(path)
		lw.NotifyLoggers(types.InfoLevel, "fallback file re-delivered",
			"component", lw.componentMetadata, "path", path)
		for _, sensor := range lw.snapshotSensors() {
			sensor.InvokeOnFallbackReplay(lw.componentMetadata, path)
		}
	}
	return true
}

func joinLines(lines []string) []byte {
	size := 0
	for _, line := range lines {
		size += len(line) + 1
	}
	body := make([]byte, 0, size)
	for i, line := range lines {
		if i > 0 {
			body = append(body, '\n')
		}
		body = append(body, line...)
	}
	return body
}
