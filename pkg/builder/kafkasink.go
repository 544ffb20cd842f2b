package builder

import (
	"github.com/joeydtaylor/filament/pkg/internal/adapter/kafkasink"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func NewKafkaSink(options ...types.Option[types.BatchSink]) types.BatchSink {
	return kafkasink.NewKafkaSink(options...)
}

func KafkaSinkWithBrokers(brokers ...string) types.Option[types.BatchSink] {
	return kafkasink.WithBrokers(brokers...)
}

func KafkaSinkWithTopic(topic string) types.Option[types.BatchSink] {
	return kafkasink.WithTopic(topic)
}

func KafkaSinkWithLogger(logger ...types.Logger) types.Option[types.BatchSink] {
	return kafkasink.WithLogger(logger...)
}

func KafkaSinkWithSensor(sensor ...types.Sensor) types.Option[types.BatchSink] {
	return kafkasink.WithSensor(sensor...)
}
