package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/sensor"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// HostSnapshot carries a point-in-time host CPU/memory reading.
type HostSnapshot = sensor.HostSnapshot

func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SnapshotHost samples host CPU and memory usage.
func SnapshotHost() HostSnapshot {
	return sensor.SnapshotHost()
}
