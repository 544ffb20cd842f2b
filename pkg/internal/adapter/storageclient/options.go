package storageclient

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// WithS3Client wires the AWS client the adapter presigns with.
func WithS3Client(cli *s3.Client) types.Option[types.StorageClient] {
	return func(sc types.StorageClient) {
		if concrete, ok := sc.(*StorageClient); ok {
			concrete.SetS3Client(cli)
		}
	}
}

// WithBucket sets the destination bucket.
func WithBucket(bucket string) types.Option[types.StorageClient] {
	return func(sc types.StorageClient) {
		sc.SetBucket(bucket)
	}
}

// WithURLTTL sets how long issued upload URLs stay valid.
func WithURLTTL(ttl time.Duration) types.Option[types.StorageClient] {
	return func(sc types.StorageClient) {
		sc.SetURLTTL(ttl)
	}
}

// WithLogger attaches loggers to the adapter.
func WithLogger(logger ...types.Logger) types.Option[types.StorageClient] {
	return func(sc types.StorageClient) {
		sc.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the adapter.
func WithSensor(sensor ...types.Sensor) types.Option[types.StorageClient] {
	return func(sc types.StorageClient) {
		sc.ConnectSensor(sensor...)
	}
}
