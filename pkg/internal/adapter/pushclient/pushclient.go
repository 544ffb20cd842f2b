// Package pushclient implements the HTTP adapter that delivers batched commit
// log lines to the collection endpoint. One push call carries one chunk; the
// engine, not this adapter, decides what happens to an undelivered body.
package pushclient

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http2"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

const (
	defaultTimeout = 30 * time.Second

	// commitPath is the collection service's ingestion route.
	commitPath = "/v1/commit"

	repositoryHeader = "x-filament-repo"
	apiKeyHeader     = "x-api-key"
	contentType      = "application/x-ndjson"
)

// PushClient is the concrete HTTP push adapter.
type PushClient struct {
	componentMetadata types.ComponentMetadata

	configLock  sync.Mutex
	baseURL     string
	apiKey      string
	headers     map[string]string
	timeout     time.Duration
	compression types.CompressionAlgorithm

	httpClient *http.Client

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewPushClient constructs a push adapter with an HTTP/2-capable transport.
func NewPushClient(options ...types.Option[types.PushClient]) types.PushClient {
	transport := &http.Transport{
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
	}
	// Enables h2 over TLS without changing plain-HTTP behavior.
	_ = http2.ConfigureTransport(transport)

	p := &PushClient{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PUSH_CLIENT",
		},
		headers:    make(map[string]string),
		timeout:    defaultTimeout,
		httpClient: &http.Client{Transport: transport, Timeout: defaultTimeout},
		loggers:    make([]types.Logger, 0),
		sensors:    make([]types.Sensor, 0),
	}

	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}
