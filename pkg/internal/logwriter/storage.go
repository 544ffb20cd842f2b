package logwriter

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

const largeLogMimeType = "text/plain"

// drainStorageQueue uploads each offloaded record to object storage and feeds
// a pointer record back into the main queue. Failed uploads are retried up to
// the attempt cap, then dropped.
func (lw *LogWriter) drainStorageQueue() {
	lw.queueLock.Lock()
	elements := lw.storageQueue.DequeueAll()
	lw.queueLock.Unlock()
	if len(elements) == 0 {
		return
	}

	client := lw.getStorageClient()
	for _, element := range elements {
		if client == nil {
			lw.NotifyLoggers(types.ErrorLevel, "dropping oversized record: no storage client",
				"component", lw.componentMetadata, "entityId", element.Log.EntityID)
			lw.notifyUploadDrop(element.Log.EntityID)
			continue
		}

		key, err := lw.offloadRecord(client, element)
		if err != nil {
			lw.requeueOrDrop(lw.storageQueue, element, element.Log.EntityID, "storage upload", err)
			continue
		}

		pointer := commitlog.New(types.EntityStorage, element.Log.EntityID,
			types.ActionProcessLargeLog, map[string]any{"key": key})
		lw.enqueueMainRecord(pointer)
	}
}

// offloadRecord presigns a repository-scoped key and uploads one record's raw
// content, returning the key on success.
func (lw *LogWriter) offloadRecord(client types.StorageClient, element *types.Element) (string, error) {
	content, ok := element.Log.Payload["content"].(string)
	if !ok {
		return "", fmt.Errorf("logwriter: storage record %s has no content", element.Log.EntityID)
	}

	key := commitlog.LargeLogStorageKey(lw.GetRepository())
	ctx := context.Background()
	url, err := client.GetUploadURL(ctx, key, largeLogMimeType, int64(len(content)))
	if err != nil {
		return "", err
	}
	if err := client.UploadToSignedURL(ctx, url, []byte(content), largeLogMimeType); err != nil {
		return "", err
	}
	return key, nil
}

// enqueueMainRecord serializes a record built inside the engine and places it
// on the main queue, bypassing Commit's routing.
func (lw *LogWriter) enqueueMainRecord(log *types.CommitLog) {
	line, err := commitlog.Serialize(log)
	if err != nil {
		lw.NotifyLoggers(types.ErrorLevel, "dropping engine record",
			"component", lw.componentMetadata, "entityId", log.EntityID, "error", err)
		return
	}
	lw.queueLock.Lock()
	lw.mainQueue.Enqueue(string(line))
	lw.queueLock.Unlock()
}

// requeueOrDrop puts a failed upload back on its queue with the attempt
// counter bumped, or drops it once the cap is reached. id names the upload in
// logs and sensor callbacks.
func (lw *LogWriter) requeueOrDrop(queue types.Capacitor[*types.Element], element *types.Element, id string, what string, err error) {
	element.RetryCount++
	if element.RetryCount >= maxUploadAttempts {
		lw.NotifyLoggers(types.ErrorLevel, "dropping after retry cap",
			"component", lw.componentMetadata, "operation", what,
			"id", id, "attempts", element.RetryCount, "error", err)
		lw.notifyUploadDrop(id)
		return
	}
	lw.NotifyLoggers(types.WarnLevel, "upload failed, will retry",
		"component", lw.componentMetadata, "operation", what,
		"id", id, "attempt", element.RetryCount, "error", err)
	for _, sensor := range lw.snapshotSensors() {
		sensor.InvokeOnUploadRetry(lw.componentMetadata, id, element.RetryCount)
	}
	lw.queueLock.Lock()
	queue.Enqueue(element)
	lw.queueLock.Unlock()
}

func (lw *LogWriter) notifyUploadDrop(id string) {
	for _, sensor := range lw.snapshotSensors() {
		sensor.InvokeOnUploadDrop(lw.componentMetadata, id)
	}
}
