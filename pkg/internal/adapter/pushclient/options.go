package pushclient

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// WithBaseURL sets the collection service base URL.
func WithBaseURL(baseURL string) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.SetBaseURL(baseURL)
	}
}

// WithAPIKey sets the push credential.
func WithAPIKey(apiKey string) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.SetAPIKey(apiKey)
	}
}

// WithTimeout bounds each push call.
func WithTimeout(timeout time.Duration) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.SetTimeout(timeout)
	}
}

// WithHeader attaches a static header to every push.
func WithHeader(key string, value string) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.AddHeader(key, value)
	}
}

// WithCompression selects body compression.
func WithCompression(algorithm types.CompressionAlgorithm) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.SetCompression(algorithm)
	}
}

// WithLogger attaches loggers to the adapter.
func WithLogger(logger ...types.Logger) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the adapter.
func WithSensor(sensor ...types.Sensor) types.Option[types.PushClient] {
	return func(p types.PushClient) {
		p.ConnectSensor(sensor...)
	}
}
