package interlock

import "github.com/joeydtaylor/filament/pkg/internal/types"

// WithLogger attaches loggers to the gate.
func WithLogger(logger ...types.Logger) types.Option[types.Interlock] {
	return func(g types.Interlock) {
		g.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the gate.
func WithSensor(sensor ...types.Sensor) types.Option[types.Interlock] {
	return func(g types.Interlock) {
		g.ConnectSensor(sensor...)
	}
}
