package kafkasink

import "github.com/joeydtaylor/filament/pkg/internal/types"

// WithBrokers sets the broker addresses the sink writes through.
func WithBrokers(brokers ...string) types.Option[types.BatchSink] {
	return func(bs types.BatchSink) {
		if concrete, ok := bs.(*KafkaSink); ok {
			concrete.configLock.Lock()
			concrete.brokers = append(concrete.brokers, brokers...)
			concrete.configLock.Unlock()
		}
	}
}

// WithTopic sets the mirror topic.
func WithTopic(topic string) types.Option[types.BatchSink] {
	return func(bs types.BatchSink) {
		if concrete, ok := bs.(*KafkaSink); ok {
			concrete.configLock.Lock()
			concrete.topic = topic
			concrete.configLock.Unlock()
		}
	}
}

// WithLogger attaches loggers to the sink.
func WithLogger(logger ...types.Logger) types.Option[types.BatchSink] {
	return func(bs types.BatchSink) {
		bs.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the sink.
func WithSensor(sensor ...types.Sensor) types.Option[types.BatchSink] {
	return func(bs types.BatchSink) {
		bs.ConnectSensor(sensor...)
	}
}
