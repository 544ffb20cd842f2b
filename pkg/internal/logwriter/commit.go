package logwriter

import (
	"fmt"

	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// Commit serializes, validates, and routes one record. It never performs
// network I/O; the only possible error is identifier validation when the
// writer raises exceptions.
func (lw *LogWriter) Commit(log *types.CommitLog) error {
	if log == nil {
		return fmt.Errorf("logwriter: nil commit log")
	}

	lw.configLock.Lock()
	raise := lw.raiseExceptions
	debug := lw.debug
	ceiling := lw.maxInMemoryLogs
	lw.configLock.Unlock()

	if !utils.IsValidIdentifier(log.EntityID) {
		if raise {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, log.EntityID)
		}
		lw.NotifyLoggers(types.WarnLevel, "dropping record with invalid entity id",
			"component", lw.componentMetadata, "entityType", log.EntityType, "entityId", log.EntityID)
		return nil
	}

	if log.Action == types.ActionUploadAttachment {
		lw.routeAttachment(log)
	} else {
		line, err := commitlog.Serialize(log)
		if err != nil {
			if raise {
				return err
			}
			lw.NotifyLoggers(types.ErrorLevel, "dropping unserializable record",
				"component", lw.componentMetadata, "entityType", log.EntityType, "entityId", log.EntityID, "error", err)
			return nil
		}
		if len(line) > largeLogThreshold {
			lw.routeOversized(log, line)
		} else {
			lw.queueLock.Lock()
			lw.mainQueue.Enqueue(string(line))
			lw.queueLock.Unlock()
		}
	}

	if debug {
		lw.NotifyLoggers(types.DebugLevel, "record committed",
			"component", lw.componentMetadata, "entityType", log.EntityType,
			"entityId", log.EntityID, "action", log.Action)
	}
	for _, sensor := range lw.snapshotSensors() {
		sensor.InvokeOnCommit(lw.componentMetadata, log)
	}

	if lw.QueueDepth() >= ceiling {
		go lw.Flush()
	}
	return nil
}

// routeAttachment derives the attachment's storage key and queues the record
// for the upload pipeline. The original record stays untouched; the queued
// copy carries the key.
func (lw *LogWriter) routeAttachment(log *types.CommitLog) {
	attachmentID, _ := log.Payload["attachmentId"].(string)
	if attachmentID == "" {
		if att, ok := log.Payload["attachment"].(types.Attachment); ok {
			attachmentID = att.Key().ID
		}
	}
	if attachmentID == "" {
		attachmentID = utils.GenerateUniqueHash()
	}

	payload := make(map[string]any, len(log.Payload)+2)
	for k, v := range log.Payload {
		payload[k] = v
	}
	payload["attachmentId"] = attachmentID
	payload["storageKey"] = commitlog.AttachmentStorageKey(
		lw.GetRepository(), log.EntityType, log.EntityID, attachmentID)

	queued := &types.CommitLog{
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Action:     log.Action,
		Payload:    payload,
		Timestamp:  log.Timestamp,
	}
	lw.queueLock.Lock()
	lw.attachmentQueue.Enqueue(&types.Element{Log: queued})
	lw.queueLock.Unlock()
}

// routeOversized wraps a record too large for the push endpoint as a storage
// upload carrying the serialized content.
func (lw *LogWriter) routeOversized(log *types.CommitLog, line []byte) {
	wrapped := commitlog.New(types.EntityStorage, utils.GenerateUniqueHash(),
		types.ActionUploadStorageLog, map[string]any{"content": string(line)})
	lw.queueLock.Lock()
	lw.storageQueue.Enqueue(&types.Element{Log: wrapped})
	lw.queueLock.Unlock()
	lw.NotifyLoggers(types.InfoLevel, "oversized record routed to storage",
		"component", lw.componentMetadata, "entityType", log.EntityType,
		"entityId", log.EntityID, "bytes", len(line))
}
