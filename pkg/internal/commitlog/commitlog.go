// Package commitlog builds and serializes the mutation records exchanged with
// the collection service. A serialized record is one flat line: the entity
// type tag followed by a compact JSON body, newline-delimited when batched.
// The engine measures record size on this exact form, so serialization is the
// single source of truth for both routing and transmission.
package commitlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// New builds an immutable commit log stamped with the current time.
func New(entityType types.EntityType, entityID string, action types.Action, payload map[string]any) *types.CommitLog {
	return &types.CommitLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
	}
}

type lineBody struct {
	ID        string         `json:"id"`
	Action    types.Action   `json:"action"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// Serialize renders one commit log to its wire line (no trailing newline).
func Serialize(log *types.CommitLog) ([]byte, error) {
	if log == nil {
		return nil, fmt.Errorf("commitlog: nil log")
	}

	body, err := json.Marshal(lineBody{
		ID:        log.EntityID,
		Action:    log.Action,
		Data:      log.Payload,
		Timestamp: log.Timestamp.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("commitlog: serialize %s/%s: %w", log.EntityType, log.EntityID, err)
	}

	line := make([]byte, 0, len(log.EntityType)+len(body))
	line = append(line, log.EntityType...)
	line = append(line, body...)
	return line, nil
}

// SerializeAll renders logs as newline-delimited lines, in order.
func SerializeAll(logs []*types.CommitLog) ([]byte, error) {
	var b strings.Builder
	for i, log := range logs {
		line, err := Serialize(log)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(line)
	}
	return []byte(b.String()), nil
}

// AttachmentStorageKey derives the object key for an attachment upload. The
// layout is load-bearing: the collection service resolves attachments back to
// their entity by parsing it.
func AttachmentStorageKey(repository string, entityType types.EntityType, entityID string, attachmentID string) string {
	return fmt.Sprintf("%s/%s/%s/files/original/%s", repository, entityType, entityID, attachmentID)
}

// LargeLogStorageKey derives a repository-scoped key for an offloaded
// oversized record.
func LargeLogStorageKey(repository string) string {
	return fmt.Sprintf("%s/large-logs/%s.log", repository, utils.GenerateUniqueHash())
}
