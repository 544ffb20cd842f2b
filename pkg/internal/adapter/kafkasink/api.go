package kafkasink

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

var (
	errNoBrokers = errors.New("kafkasink: no brokers configured")
	errNoTopic   = errors.New("kafkasink: no topic configured")
)

// PublishBatch copies one delivered chunk onto the topic, keyed by repository
// so a repository's chunks land on one partition in order.
func (ks *KafkaSink) PublishBatch(ctx context.Context, repository string, body []byte) error {
	w, err := ks.getOrCreateWriter()
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(repository),
		Value: body,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/x-ndjson")},
		},
	}
	if err := w.WriteMessages(ctx, msg); err != nil {
		ks.NotifyLoggers(types.WarnLevel, "mirror publish failed",
			"component", ks.componentMetadata, "repository", repository, "error", err)
		return fmt.Errorf("kafkasink: publish: %w", err)
	}
	return nil
}

// Close shuts down the underlying writer if one was ever created.
func (ks *KafkaSink) Close() error {
	ks.configLock.Lock()
	w := ks.writer
	ks.writer = nil
	ks.configLock.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}
