// Package interlock provides the named mutual-exclusion gate that serializes
// flush cycles. Execution of the guarded section is raced against a deadline:
// a caller whose deadline fires first unblocks with ErrTimeout while the
// section finishes in the background, so a wedged cycle can never permanently
// stall the writer. The structures touched by the section must tolerate that
// late completion, which the delivery engine guarantees by keeping every
// queue operation atomic under its own lock.
package interlock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// ErrTimeout is returned when the deadline elapses before the guarded section
// finishes. The section itself still runs to completion.
var ErrTimeout = errors.New("interlock: timed out waiting for critical section")

// Interlock serializes critical sections per gate instance.
type Interlock struct {
	componentMetadata types.ComponentMetadata

	name string
	mu   sync.Mutex

	loggers []types.Logger
	sensors []types.Sensor

	stateLock sync.Mutex
}

// NewInterlock constructs a gate named after the owning component.
func NewInterlock(name string, options ...types.Option[types.Interlock]) types.Interlock {
	g := &Interlock{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "INTERLOCK",
			Name: name,
		},
		name:    name,
		loggers: make([]types.Logger, 0),
		sensors: make([]types.Sensor, 0),
	}

	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Do runs section under the gate's lock. If timeout elapses first, Do returns
// ErrTimeout immediately; the background task still acquires the lock, runs
// the section to completion, and releases.
func (g *Interlock) Do(ctx context.Context, timeout time.Duration, section func() error) error {
	done := make(chan error, 1)

	go func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		done <- section()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		g.notifyTimeout()
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Interlock) notifyTimeout() {
	for _, sensor := range g.snapshotSensors() {
		if sensor != nil {
			sensor.InvokeOnInterlockTimeout(g.componentMetadata, g.name)
		}
	}
	g.NotifyLoggers(
		types.WarnLevel,
		"Interlock timed out; section continues in background",
		"component", g.componentMetadata,
		"gate", g.name,
	)
}
