package logwriter

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// WithConfig applies a settings bundle in one option.
func WithConfig(cfg types.WriterConfig) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		if cfg.BaseURL != "" {
			w.SetBaseURL(cfg.BaseURL)
		}
		if cfg.APIKey != "" {
			w.SetAPIKey(cfg.APIKey)
		}
		if cfg.Repository != "" {
			w.SetRepository(cfg.Repository)
		}
		w.SetAutoFlush(cfg.AutoFlush)
		if cfg.FlushInterval > 0 {
			w.SetFlushInterval(cfg.FlushInterval)
		}
		if cfg.MaxInMemoryLogs > 0 {
			w.SetMaxInMemoryLogs(cfg.MaxInMemoryLogs)
		}
		w.SetRaiseExceptions(cfg.RaiseExceptions)
		if concrete, ok := w.(*LogWriter); ok {
			concrete.SetDebug(cfg.Debug)
		}
	}
}

// WithBaseURL sets the collection service base URL.
func WithBaseURL(baseURL string) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetBaseURL(baseURL)
	}
}

// WithAPIKey sets the push credential.
func WithAPIKey(apiKey string) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetAPIKey(apiKey)
	}
}

// WithRepository scopes the writer to a repository.
func WithRepository(repository string) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetRepository(repository)
	}
}

// WithAutoFlush enables or disables the periodic flush timer.
func WithAutoFlush(enabled bool) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetAutoFlush(enabled)
	}
}

// WithFlushInterval sets the periodic flush cadence.
func WithFlushInterval(interval time.Duration) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetFlushInterval(interval)
	}
}

// WithMaxInMemoryLogs sets the backpressure ceiling and queue capacity.
func WithMaxInMemoryLogs(max int) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetMaxInMemoryLogs(max)
	}
}

// WithRaiseExceptions selects strict identifier validation.
func WithRaiseExceptions(raise bool) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetRaiseExceptions(raise)
	}
}

// WithScratchDir sets where fallback files spill.
func WithScratchDir(dir string) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetScratchDir(dir)
	}
}

// WithCompression selects push-body compression.
func WithCompression(algorithm types.CompressionAlgorithm) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetCompression(algorithm)
	}
}

// WithPushClient attaches the delivery transport.
func WithPushClient(client types.PushClient) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetPushClient(client)
	}
}

// WithStorageClient attaches the signed-URL storage adapter.
func WithStorageClient(client types.StorageClient) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetStorageClient(client)
	}
}

// WithMirrorSink attaches the optional batch mirror.
func WithMirrorSink(sink types.BatchSink) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.SetMirrorSink(sink)
	}
}

// WithLogger attaches loggers to the writer and its subcomponents.
func WithLogger(logger ...types.Logger) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.ConnectLogger(logger...)
	}
}

// WithSensor attaches sensors to the writer and its subcomponents.
func WithSensor(sensor ...types.Sensor) types.Option[types.LogWriter] {
	return func(w types.LogWriter) {
		w.ConnectSensor(sensor...)
	}
}
