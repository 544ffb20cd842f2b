// Package emitter provides the entity handles applications log through. Each
// handle is a thin {id, kind, writer} triple: every method builds one commit
// log and hands it to the delivery engine. Handles perform no ordering
// validation and hold no entity state; the collection service reassembles
// history from the records themselves.
package emitter

import (
	"github.com/joeydtaylor/filament/pkg/internal/commitlog"
	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// Config seeds a new entity. A zero ID is replaced with a generated one.
type Config struct {
	ID   string
	Name string
	Tags map[string]string
}

// ErrorInfo describes a failure attached to an entity.
type ErrorInfo struct {
	Message string
	Code    string
	Type    string
}

// emitter is the shared core embedded by every handle kind.
type emitter struct {
	id         string
	entityType types.EntityType
	writer     types.LogWriter
}

// ID returns the entity identifier.
func (e *emitter) ID() string { return e.id }

func (e *emitter) commit(action types.Action, payload map[string]any) error {
	return e.writer.Commit(commitlog.New(e.entityType, e.id, action, payload))
}

// AddTag records one tag on the entity.
func (e *emitter) AddTag(key string, value string) error {
	return e.commit(types.ActionAddTag, map[string]any{"key": key, "value": value})
}

// AddMetadata merges metadata into the entity.
func (e *emitter) AddMetadata(metadata map[string]any) error {
	return e.commit(types.ActionAddMetadata, map[string]any{"metadata": metadata})
}

// AddAttachment binds a binary payload to the entity. Upload happens later,
// inside the delivery engine; the record reaches the service only after the
// bytes do.
func (e *emitter) AddAttachment(attachment types.Attachment) error {
	key := attachment.Key()
	if key.ID == "" {
		key.ID = utils.GenerateUniqueHash()
	}
	return e.commit(types.ActionUploadAttachment, map[string]any{
		"attachment":   attachment,
		"attachmentId": key.ID,
	})
}

// Event records a point-in-time occurrence on the entity.
func (e *emitter) Event(id string, name string, tags map[string]string) error {
	if id == "" {
		id = utils.GenerateUniqueHash()
	}
	payload := map[string]any{"id": id, "name": name}
	if len(tags) > 0 {
		payload["tags"] = tags
	}
	return e.commit(types.ActionEvent, payload)
}

// SetError attaches a failure to the entity.
func (e *emitter) SetError(info ErrorInfo) error {
	payload := map[string]any{
		"id":      utils.GenerateUniqueHash(),
		"message": info.Message,
	}
	if info.Code != "" {
		payload["code"] = info.Code
	}
	if info.Type != "" {
		payload["type"] = info.Type
	}
	return e.commit(types.ActionError, payload)
}

// End closes the entity.
func (e *emitter) End() error {
	return e.commit(types.ActionEnd, map[string]any{})
}

// create emits the entity's create record and returns the shared core.
func create(writer types.LogWriter, entityType types.EntityType, cfg Config, extra map[string]any) (emitter, error) {
	if cfg.ID == "" {
		cfg.ID = utils.GenerateUniqueHash()
	}
	payload := map[string]any{}
	if cfg.Name != "" {
		payload["name"] = cfg.Name
	}
	if len(cfg.Tags) > 0 {
		payload["tags"] = cfg.Tags
	}
	for k, v := range extra {
		payload[k] = v
	}
	e := emitter{id: cfg.ID, entityType: entityType, writer: writer}
	if err := e.commit(types.ActionCreate, payload); err != nil {
		return emitter{}, err
	}
	return e, nil
}
