package types

import (
	"context"
	"time"
)

// Interlock serializes a named critical section. Acquisition and execution
// happen on a background task that races a caller-supplied deadline: if the
// deadline elapses first the caller unblocks with a timeout error, while the
// section still runs to completion once it gets the lock. A wedged section
// therefore never permanently stalls its callers, at the price that a caller
// may observe state from before the late section's effects land.
type Interlock interface {
	// Do runs section under the lock. If timeout elapses before the section
	// finishes, Do returns ErrTimeout from the interlock package and the
	// section keeps running in the background.
	Do(ctx context.Context, timeout time.Duration, section func() error) error

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
