package capacitor

import "github.com/joeydtaylor/filament/pkg/internal/types"

// WithCapacity sets the maximum number of buffered items.
func WithCapacity[T any](maxSize int) types.Option[types.Capacitor[T]] {
	return func(c types.Capacitor[T]) {
		if impl, ok := c.(*Capacitor[T]); ok && maxSize > 0 {
			impl.maxSize = maxSize
		}
	}
}

// WithLogger attaches loggers to the capacitor.
func WithLogger[T any](logger ...types.Logger) types.Option[types.Capacitor[T]] {
	return func(c types.Capacitor[T]) {
		c.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors observing eviction events.
func WithSensor[T any](sensor ...types.Sensor) types.Option[types.Capacitor[T]] {
	return func(c types.Capacitor[T]) {
		c.ConnectSensor(sensor...)
	}
}

// WithComponentMetadata overrides the generated name and id.
func WithComponentMetadata[T any](name string, id string) types.Option[types.Capacitor[T]] {
	return func(c types.Capacitor[T]) {
		c.SetComponentMetadata(name, id)
	}
}
