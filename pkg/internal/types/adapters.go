package types

import (
	"context"
	"time"
)

// PushClient delivers one batch of serialized commit log lines to the remote
// collection endpoint. Success and failure are binary: any non-2xx status or
// transport error is a failure and the caller decides what to do with the
// undelivered body.
type PushClient interface {
	Push(ctx context.Context, repository string, body []byte) error
	Close() error

	SetBaseURL(string)
	SetAPIKey(string)
	SetTimeout(time.Duration)
	AddHeader(key string, value string)
	SetCompression(CompressionAlgorithm)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}

// StorageClient is the signed-URL object storage contract used for attachment
// upload and large-payload offload.
type StorageClient interface {
	// GetUploadURL returns a pre-signed URL authorizing a PUT of size bytes
	// with the given MIME type at key.
	GetUploadURL(ctx context.Context, key string, mimeType string, size int64) (string, error)

	// UploadToSignedURL PUTs data to a URL previously returned by
	// GetUploadURL.
	UploadToSignedURL(ctx context.Context, url string, data []byte, mimeType string) error

	SetBucket(string)
	SetURLTTL(time.Duration)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}

// BatchSink receives a copy of every successfully pushed chunk. It exists for
// in-house fan-out (e.g. mirroring batches onto a Kafka topic) and is always
// best-effort: sink errors never affect delivery.
type BatchSink interface {
	PublishBatch(ctx context.Context, repository string, body []byte) error
	Close() error

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
