// Package kafkasink implements the best-effort batch mirror. Every chunk the
// engine delivers successfully can be copied onto a Kafka topic for in-house
// consumers; sink failures are logged and never surface to delivery.
package kafkasink

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

// messageWriter is the subset of *kafka.Writer the sink uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink mirrors pushed chunks onto a Kafka topic, keyed by repository.
type KafkaSink struct {
	componentMetadata types.ComponentMetadata

	configLock sync.Mutex
	brokers    []string
	topic      string
	writer     messageWriter

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewKafkaSink constructs a mirror sink. The underlying writer is created on
// first publish unless one is injected.
func NewKafkaSink(options ...types.Option[types.BatchSink]) types.BatchSink {
	ks := &KafkaSink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "KAFKA_SINK",
		},
	}
	for _, option := range options {
		option(ks)
	}
	return ks
}

// SetWriter injects a prebuilt writer, bypassing broker/topic construction.
func (ks *KafkaSink) SetWriter(w messageWriter) {
	ks.configLock.Lock()
	ks.writer = w
	ks.configLock.Unlock()
}

// getOrCreateWriter returns the active writer, building one from brokers and
// topic on first use. Callers must not hold configLock.
func (ks *KafkaSink) getOrCreateWriter() (messageWriter, error) {
	ks.configLock.Lock()
	defer ks.configLock.Unlock()
	if ks.writer != nil {
		return ks.writer, nil
	}
	if len(ks.brokers) == 0 {
		return nil, errNoBrokers
	}
	if ks.topic == "" {
		return nil, errNoTopic
	}
	ks.writer = &kafka.Writer{
		Addr:         kafka.TCP(ks.brokers...),
		Topic:        ks.topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return ks.writer, nil
}
