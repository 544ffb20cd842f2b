package logwriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// drainAttachmentQueue runs the upload pipeline: file and data attachments are
// uploaded through the storage adapter, URL attachments pass straight through.
// The add-attachment record enters the main queue only after the bytes are in
// object storage.
func (lw *LogWriter) drainAttachmentQueue() {
	lw.queueLock.Lock()
	elements := lw.attachmentQueue.DequeueAll()
	lw.queueLock.Unlock()

	for _, element := range elements {
		attachment, ok := element.Log.Payload["attachment"].(types.Attachment)
		if !ok {
			lw.NotifyLoggers(types.ErrorLevel, "dropping attachment record without descriptor",
				"component", lw.componentMetadata, "entityId", element.Log.EntityID)
			continue
		}
		attachmentID, _ := element.Log.Payload["attachmentId"].(string)
		storageKey, _ := element.Log.Payload["storageKey"].(string)

		if url, isURL := attachment.(types.URLAttachment); isURL {
			key := url.Key()
			payload := attachmentPayload(attachmentID, key)
			payload["url"] = url.URL
			lw.enqueueMainRecord(commitlog.New(element.Log.EntityType, element.Log.EntityID,
				types.ActionAddAttachment, payload))
			continue
		}

		meta, err := lw.uploadAttachment(attachment, storageKey)
		if err != nil {
			lw.requeueOrDrop(lw.attachmentQueue, element, attachmentID, "attachment upload", err)
			continue
		}
		payload := attachmentPayload(attachmentID, meta)
		payload["key"] = storageKey
		lw.enqueueMainRecord(commitlog.New(element.Log.EntityType, element.Log.EntityID,
			types.ActionAddAttachment, payload))
	}
}

// uploadAttachment resolves the attachment's bytes, name, MIME type and size,
// then presigns and uploads. It returns the resolved metadata.
func (lw *LogWriter) uploadAttachment(attachment types.Attachment, storageKey string) (types.AttachmentKey, error) {
	client := lw.getStorageClient()
	if client == nil {
		return types.AttachmentKey{}, fmt.Errorf("logwriter: no storage client configured")
	}

	meta := attachment.Key()
	var data []byte
	switch a := attachment.(type) {
	case types.FileAttachment:
		if meta.Name == "" {
			meta.Name = filepath.Base(a.Path)
		}
		b, err := os.ReadFile(a.Path)
		if err != nil {
			return meta, fmt.Errorf("logwriter: read attachment %s: %w", a.Path, err)
		}
		data = b
	case types.DataAttachment:
		data = a.Data
	default:
		return meta, fmt.Errorf("logwriter: unsupported attachment kind %T", attachment)
	}

	if meta.MimeType == "" {
		meta.MimeType = utils.InferMimeType(meta.Name)
	}
	meta.Size = int64(len(data))
	meta.StorageKey = storageKey

	ctx := context.Background()
	url, err := client.GetUploadURL(ctx, storageKey, meta.MimeType, meta.Size)
	if err != nil {
		return meta, err
	}
	if err := client.UploadToSignedURL(ctx, url, data, meta.MimeType); err != nil {
		return meta, err
	}
	return meta, nil
}

// attachmentPayload builds the add-attachment record body: metadata only,
// never raw bytes or local paths.
func attachmentPayload(attachmentID string, meta types.AttachmentKey) map[string]any {
	payload := map[string]any{"id": attachmentID}
	if meta.Name != "" {
		payload["name"] = meta.Name
	}
	if meta.MimeType != "" {
		payload["mimeType"] = meta.MimeType
	}
	if meta.Size > 0 {
		payload["size"] = meta.Size
	}
	return payload
}
