// Package capacitor provides the bounded FIFO buffer backing the delivery
// engine's three queues (main, attachment, storage offload). A full capacitor
// discharges its oldest items to make room for new ones; that loss is silent
// by contract and observable only through sensors and loggers.
//
// The capacitor has no internal locking. The owning component serializes
// access, which keeps enqueue on the commit path a plain slice append.
package capacitor

import (
	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// DefaultCapacity bounds a capacitor when no explicit capacity option is
// given. Large enough that eviction only happens under sustained push
// failure, small enough to cap memory on a stuck endpoint.
const DefaultCapacity = 10000

// Capacitor is a bounded FIFO buffer over items of type T.
type Capacitor[T any] struct {
	componentMetadata types.ComponentMetadata

	items   []T
	maxSize int

	loggers []types.Logger
	sensors []types.Sensor
}

// NewCapacitor constructs a capacitor with the provided options applied.
func NewCapacitor[T any](options ...types.Option[types.Capacitor[T]]) types.Capacitor[T] {
	c := &Capacitor[T]{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CAPACITOR",
		},
		maxSize: DefaultCapacity,
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}

	if c.maxSize < 1 {
		c.maxSize = 1
	}
	c.items = make([]T, 0, min(c.maxSize, 64))
	return c
}
