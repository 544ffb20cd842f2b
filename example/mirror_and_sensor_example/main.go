package main

import (
	"fmt"

	"github.com/joeydtaylor/filament/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel(builder.DebugLevel))

	fmt.Println("Wiring a sensor to watch the delivery pipeline...")

	sensor := builder.NewSensor(builder.SensorWithLogger(logger))
	sensor.RegisterOnFlushComplete(func(cm builder.ComponentMetadata, chunks int, records int) {
		fmt.Printf("flush complete: %d records in %d chunks\n", records, chunks)
	})
	sensor.RegisterOnPushFailure(func(cm builder.ComponentMetadata, err error) {
		fmt.Printf("push failure: %v\n", err)
	})
	sensor.RegisterOnCapacitorEvict(func(cm builder.ComponentMetadata, dropped int) {
		fmt.Printf("queue overflow: %d records dropped\n", dropped)
	})

	fmt.Println("Mirroring delivered batches onto Kafka...")

	mirror := builder.NewKafkaSink(
		builder.KafkaSinkWithBrokers("localhost:9092"),
		builder.KafkaSinkWithTopic("telemetry-batches"),
		builder.KafkaSinkWithLogger(logger),
	)

	push := builder.NewPushClient(
		builder.PushClientWithBaseURL("https://collect.example.com"),
		builder.PushClientWithAPIKey("key-from-env"),
		builder.PushClientWithCompression(builder.CompressZstd),
	)

	writer := builder.NewLogWriter(
		builder.LogWriterWithRepository("acme-prod"),
		builder.LogWriterWithPushClient(push),
		builder.LogWriterWithMirrorSink(mirror),
		builder.LogWriterWithSensor(sensor),
		builder.LogWriterWithLogger(logger),
	)
	defer writer.Stop()

	trace, err := builder.NewTrace(writer, builder.EmitterConfig{Name: "batch-job"})
	if err != nil {
		fmt.Printf("Error creating trace: %v\n", err)
		return
	}
	for i := 0; i < 250; i++ {
		trace.Event("", "item-processed", map[string]string{"index": fmt.Sprint(i)})
	}
	trace.End()

	writer.Flush()

	host := builder.SnapshotHost()
	fmt.Printf("host after flush: cpu %.1f%%, mem %.1f%%\n", host.CPUPercent, host.MemoryUsedPercent)
}
