package builder

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/adapter/pushclient"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func NewPushClient(options ...types.Option[types.PushClient]) types.PushClient {
	return pushclient.NewPushClient(options...)
}

func PushClientWithBaseURL(baseURL string) types.Option[types.PushClient] {
	return pushclient.WithBaseURL(baseURL)
}

func PushClientWithAPIKey(apiKey string) types.Option[types.PushClient] {
	return pushclient.WithAPIKey(apiKey)
}

func PushClientWithTimeout(timeout time.Duration) types.Option[types.PushClient] {
	return pushclient.WithTimeout(timeout)
}

func PushClientWithHeader(key string, value string) types.Option[types.PushClient] {
	return pushclient.WithHeader(key, value)
}

func PushClientWithCompression(algorithm CompressionAlgorithm) types.Option[types.PushClient] {
	return pushclient.WithCompression(algorithm)
}

func PushClientWithLogger(logger ...types.Logger) types.Option[types.PushClient] {
	return pushclient.WithLogger(logger...)
}

func PushClientWithSensor(sensor ...types.Sensor) types.Option[types.PushClient] {
	return pushclient.WithSensor(sensor...)
}
