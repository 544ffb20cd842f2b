package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/filament/pkg/builder"
)

func main() {
	ctx := context.Background()

	fmt.Println("Creating an S3-backed storage client (LocalStack endpoint)...")

	s3cli, err := builder.NewS3ClientStatic(
		ctx,
		"us-east-1",
		"test", "test", "",
		"http://localhost:4566",
		true,
	)
	if err != nil {
		fmt.Printf("Error creating S3 client: %v\n", err)
		return
	}

	storage := builder.NewStorageClient(
		builder.StorageClientWithS3Client(s3cli),
		builder.StorageClientWithBucket("filament-telemetry"),
		builder.StorageClientWithURLTTL(10*time.Minute),
	)

	push := builder.NewPushClient(
		builder.PushClientWithBaseURL("https://collect.example.com"),
		builder.PushClientWithAPIKey("key-from-env"),
	)

	writer := builder.NewLogWriter(
		builder.LogWriterWithRepository("acme-prod"),
		builder.LogWriterWithPushClient(push),
		builder.LogWriterWithStorageClient(storage),
	)
	defer writer.Stop()

	trace, err := builder.NewTrace(writer, builder.EmitterConfig{Name: "report-run"})
	if err != nil {
		fmt.Printf("Error creating trace: %v\n", err)
		return
	}

	fmt.Println("Attaching a file, a buffer, and an external URL...")

	trace.AddAttachment(builder.FileAttachment{
		AttachmentKey: builder.AttachmentKey{Name: "report.pdf"},
		Path:          "/tmp/report.pdf",
	})
	trace.AddAttachment(builder.DataAttachment{
		AttachmentKey: builder.AttachmentKey{Name: "summary.txt", MimeType: "text/plain"},
		Data:          []byte("run completed in 4.2s"),
	})
	trace.AddAttachment(builder.URLAttachment{
		AttachmentKey: builder.AttachmentKey{Name: "dashboard"},
		URL:           "https://grafana.example.com/d/run-42",
	})
	trace.End()

	fmt.Println("Flushing (uploads happen here, records follow the bytes)...")
	writer.Flush()
}
