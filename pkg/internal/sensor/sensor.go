// Package sensor implements the callback-based observer attached to writer
// components. Host applications and tests register callbacks for delivery
// events; the engine invokes them synchronously, so callbacks must be cheap.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// Sensor dispatches writer events to registered callbacks.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex

	callbackLock       sync.Mutex
	onCommit           []func(types.ComponentMetadata, *types.CommitLog)
	onCapacitorEvict   []func(types.ComponentMetadata, int)
	onFlushComplete    []func(types.ComponentMetadata, int, int)
	onPushFailure      []func(types.ComponentMetadata, error)
	onUploadRetry      []func(types.ComponentMetadata, string, int)
	onUploadDrop       []func(types.ComponentMetadata, string)
	onFallbackPersist  []func(types.ComponentMetadata, string, int)
	onFallbackReplay   []func(types.ComponentMetadata, string)
	onInterlockTimeout []func(types.ComponentMetadata, string)
}

// NewSensor constructs a sensor with the provided options applied.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ConnectLogger attaches loggers to the sensor.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	s.loggers = append(s.loggers, loggers...)
	s.loggersLock.Unlock()
}

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}
