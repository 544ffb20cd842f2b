package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// Record model aliases, so applications can build and inspect commit logs
// without importing internal packages.

type ComponentMetadata = types.ComponentMetadata

type CommitLog = types.CommitLog

type EntityType = types.EntityType

const (
	EntitySession    EntityType = types.EntitySession
	EntityTrace      EntityType = types.EntityTrace
	EntitySpan       EntityType = types.EntitySpan
	EntityGeneration EntityType = types.EntityGeneration
	EntityToolCall   EntityType = types.EntityToolCall
	EntityRetrieval  EntityType = types.EntityRetrieval
	EntityError      EntityType = types.EntityError
	EntityStorage    EntityType = types.EntityStorage
)

type Action = types.Action

type Attachment = types.Attachment

type AttachmentKey = types.AttachmentKey

type FileAttachment = types.FileAttachment

type DataAttachment = types.DataAttachment

type URLAttachment = types.URLAttachment

// NewCommitLog builds an immutable record stamped with the current time.
func NewCommitLog(entityType EntityType, entityID string, action Action, payload map[string]any) *CommitLog {
	return commitlog.New(entityType, entityID, action, payload)
}

// SerializeCommitLog renders one record to its wire line.
func SerializeCommitLog(log *CommitLog) ([]byte, error) {
	return commitlog.Serialize(log)
}
