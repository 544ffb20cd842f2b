package types

import "time"

// EntityType tags the kind of logged entity a commit log mutates.
type EntityType string

const (
	EntitySession    EntityType = "SESSION"
	EntityTrace      EntityType = "TRACE"
	EntitySpan       EntityType = "SPAN"
	EntityGeneration EntityType = "GENERATION"
	EntityToolCall   EntityType = "TOOL_CALL"
	EntityRetrieval  EntityType = "RETRIEVAL"
	EntityError      EntityType = "ERROR"
	EntityStorage    EntityType = "STORAGE"
)

// Action tags what a commit log does to its entity.
type Action string

const (
	ActionCreate           Action = "create"
	ActionUpdate           Action = "update"
	ActionEnd              Action = "end"
	ActionAddTag           Action = "add-tag"
	ActionAddMetadata      Action = "add-metadata"
	ActionAddAttachment    Action = "add-attachment"
	ActionUploadAttachment Action = "upload-attachment"
	ActionResult           Action = "result"
	ActionError            Action = "error"
	ActionEvent            Action = "event"
	ActionFeedback         Action = "feedback"
	ActionProcessLargeLog  Action = "process-large-log"
	ActionUploadStorageLog Action = "upload-storage-log"
)

// CommitLog is the atomic unit of change to a logged entity. It is immutable
// once built; retry state lives in the Element wrapper, never on the log
// itself. Records reference each other only by EntityID and EntityType, which
// is how the collection service reassembles per-entity history.
type CommitLog struct {
	EntityType EntityType
	EntityID   string
	Action     Action
	Payload    map[string]any
	Timestamp  time.Time
}

// Element wraps a commit log queued for upload work, carrying the attempt
// counter for the retry cap. Wrapping keeps the log itself immutable.
type Element struct {
	Log        *CommitLog
	RetryCount int
}

// Attachment describes one binary payload bound to an entity: a file on disk,
// an in-memory buffer, or a URL already hosted elsewhere.
type Attachment interface {
	// Key returns metadata common to all attachment kinds.
	Key() AttachmentKey
}

// AttachmentKey is the metadata shared by every attachment kind.
type AttachmentKey struct {
	ID         string
	Name       string
	MimeType   string
	Size       int64
	StorageKey string
}

// FileAttachment references a file on local disk to be read and uploaded.
type FileAttachment struct {
	AttachmentKey
	Path string
}

func (a FileAttachment) Key() AttachmentKey { return a.AttachmentKey }

// DataAttachment carries the payload bytes inline.
type DataAttachment struct {
	AttachmentKey
	Data []byte
}

func (a DataAttachment) Key() AttachmentKey { return a.AttachmentKey }

// URLAttachment references data already reachable at an external URL; nothing
// is uploaded for it.
type URLAttachment struct {
	AttachmentKey
	URL string
}

func (a URLAttachment) Key() AttachmentKey { return a.AttachmentKey }
