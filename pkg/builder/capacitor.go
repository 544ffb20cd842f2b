package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/capacitor"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func NewCapacitor[T any](options ...types.Option[types.Capacitor[T]]) types.Capacitor[T] {
	return capacitor.NewCapacitor[T](options...)
}

func CapacitorWithCapacity[T any](maxSize int) types.Option[types.Capacitor[T]] {
	return capacitor.WithCapacity[T](maxSize)
}

func CapacitorWithLogger[T any](logger ...types.Logger) types.Option[types.Capacitor[T]] {
	return capacitor.WithLogger[T](logger...)
}

func CapacitorWithSensor[T any](sensor ...types.Sensor) types.Option[types.Capacitor[T]] {
	return capacitor.WithSensor[T](sensor...)
}
