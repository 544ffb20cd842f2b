package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/interlock"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// ErrInterlockTimeout reports a caller that waited out an interlock deadline.
var ErrInterlockTimeout = interlock.ErrTimeout

func NewInterlock(name string, options ...types.Option[types.Interlock]) types.Interlock {
	return interlock.NewInterlock(name, options...)
}

func InterlockWithLogger(logger ...types.Logger) types.Option[types.Interlock] {
	return interlock.WithLogger(logger...)
}

func InterlockWithSensor(sensor ...types.Sensor) types.Option[types.Interlock] {
	return interlock.WithSensor(sensor...)
}
