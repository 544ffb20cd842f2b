package logwriter

import (
	"context"
	"errors"
	"strings"

	"github.com/joeydtaylor/filament/pkg/internal/interlock"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

var errNoPushClient = errors.New("logwriter: no push client configured")

// Flush drains the queues and pushes batches now. Cycles are serialized by the
// interlock; a caller that waits out the timeout unblocks while the in-flight
// cycle finishes in the background.
func (lw *LogWriter) Flush() {
	err := lw.gate.Do(context.Background(), flushTimeout, func() error {
		return lw.flushCycle()
	})
	switch {
	case errors.Is(err, interlock.ErrTimeout):
		// Already logged and observed by the gate's sensors.
	case err != nil:
		lw.NotifyLoggers(types.ErrorLevel, "flush cycle failed",
			"component", lw.componentMetadata, "error", err)
	}
}

// flushCycle runs one delivery pass: spilled fallback files first, then
// storage uploads, then attachment uploads (both feed the main queue), then
// the main queue itself in ≤5 MB chunks. Fallback files hold records that
// failed on an earlier cycle, so they ship before anything committed since.
func (lw *LogWriter) flushCycle() error {
	replayed := lw.replayFallback()

	lw.drainStorageQueue()
	lw.drainAttachmentQueue()

	lw.queueLock.Lock()
	lines := lw.mainQueue.DequeueAll()
	lw.queueLock.Unlock()

	if len(lines) == 0 {
		return nil
	}

	chunks := partitionLines(lines, maxChunkBytes)
	if !replayed {
		// Older records are still stuck on disk. Pushing now would deliver
		// the new batch ahead of them, so it joins the spill instead.
		lw.handleUndelivered(chunks)
		return nil
	}
	for i, chunk := range chunks {
		body := []byte(strings.Join(chunk, "\n"))
		if err := lw.push(body); err != nil {
			lw.NotifyLoggers(types.ErrorLevel, "push failed",
				"component", lw.componentMetadata, "chunk", i, "records", len(chunk), "error", err)
			for _, sensor := range lw.snapshotSensors() {
				sensor.InvokeOnPushFailure(lw.componentMetadata, err)
			}
			lw.handleUndelivered(chunks[i:])
			return nil
		}
		if sink := lw.getMirrorSink(); sink != nil {
			// Best effort; the sink logs its own failures.
			_ = sink.PublishBatch(context.Background(), lw.GetRepository(), body)
		}
	}

	for _, sensor := range lw.snapshotSensors() {
		sensor.InvokeOnFlushComplete(lw.componentMetadata, len(chunks), len(lines))
	}
	return nil
}

// push delivers one body to the collection service.
func (lw *LogWriter) push(body []byte) error {
	client := lw.getPushClient()
	if client == nil {
		return errNoPushClient
	}
	return client.Push(context.Background(), lw.GetRepository(), body)
}

// handleUndelivered takes the chunks a failed cycle could not push. With a
// writable scratch dir each chunk is persisted as one fallback file; otherwise
// the records go back to the main queue and take their chances with eviction.
func (lw *LogWriter) handleUndelivered(chunks [][]string) {
	if lw.fallbackUsable() {
		lw.persistChunks(chunks)
		return
	}
	lw.queueLock.Lock()
	for _, chunk := range chunks {
		lw.mainQueue.EnqueueAll(chunk)
	}
	lw.queueLock.Unlock()
}

// partitionLines splits lines into chunks whose joined size stays at or under
// maxBytes, preserving order. A single line larger than maxBytes still gets a
// chunk of its own.
func partitionLines(lines []string, maxBytes int) [][]string {
	var chunks [][]string
	var current []string
	currentBytes := 0
	for _, line := range lines {
		lineBytes := len(line)
		if len(current) > 0 {
			lineBytes++ // joining newline
		}
		if len(current) > 0 && currentBytes+lineBytes > maxBytes {
			chunks = append(chunks, current)
			current = nil
			currentBytes = 0
			lineBytes = len(line)
		}
		current = append(current, line)
		currentBytes += lineBytes
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
