package builder

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/compression"
	"github.com/joeydtaylor/filament/pkg/internal/logwriter"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

type WriterConfig = types.WriterConfig

type CompressionAlgorithm = types.CompressionAlgorithm

const (
	CompressNone   CompressionAlgorithm = compression.COMPRESS_NONE
	CompressGzip   CompressionAlgorithm = compression.COMPRESS_GZIP
	CompressSnappy CompressionAlgorithm = compression.COMPRESS_SNAPPY
	CompressZstd   CompressionAlgorithm = compression.COMPRESS_ZSTD
	CompressBrotli CompressionAlgorithm = compression.COMPRESS_BROTLI
	CompressLz4    CompressionAlgorithm = compression.COMPRESS_LZ4
)

// ErrInvalidIdentifier is returned from Commit in strict mode when an entity
// id falls outside [A-Za-z0-9_-].
var ErrInvalidIdentifier = logwriter.ErrInvalidIdentifier

func NewLogWriter(options ...types.Option[types.LogWriter]) types.LogWriter {
	return logwriter.NewLogWriter(options...)
}

func LogWriterWithConfig(cfg WriterConfig) types.Option[types.LogWriter] {
	return logwriter.WithConfig(cfg)
}

func LogWriterWithBaseURL(baseURL string) types.Option[types.LogWriter] {
	return logwriter.WithBaseURL(baseURL)
}

func LogWriterWithAPIKey(apiKey string) types.Option[types.LogWriter] {
	return logwriter.WithAPIKey(apiKey)
}

func LogWriterWithRepository(repository string) types.Option[types.LogWriter] {
	return logwriter.WithRepository(repository)
}

func LogWriterWithAutoFlush(enabled bool) types.Option[types.LogWriter] {
	return logwriter.WithAutoFlush(enabled)
}

func LogWriterWithFlushInterval(interval time.Duration) types.Option[types.LogWriter] {
	return logwriter.WithFlushInterval(interval)
}

func LogWriterWithMaxInMemoryLogs(max int) types.Option[types.LogWriter] {
	return logwriter.WithMaxInMemoryLogs(max)
}

func LogWriterWithRaiseExceptions(raise bool) types.Option[types.LogWriter] {
	return logwriter.WithRaiseExceptions(raise)
}

func LogWriterWithScratchDir(dir string) types.Option[types.LogWriter] {
	return logwriter.WithScratchDir(dir)
}

func LogWriterWithCompression(algorithm CompressionAlgorithm) types.Option[types.LogWriter] {
	return logwriter.WithCompression(algorithm)
}

func LogWriterWithPushClient(client types.PushClient) types.Option[types.LogWriter] {
	return logwriter.WithPushClient(client)
}

func LogWriterWithStorageClient(client types.StorageClient) types.Option[types.LogWriter] {
	return logwriter.WithStorageClient(client)
}

func LogWriterWithMirrorSink(sink types.BatchSink) types.Option[types.LogWriter] {
	return logwriter.WithMirrorSink(sink)
}

func LogWriterWithLogger(logger ...types.Logger) types.Option[types.LogWriter] {
	return logwriter.WithLogger(logger...)
}

func LogWriterWithSensor(sensor ...types.Sensor) types.Option[types.LogWriter] {
	return logwriter.WithSensor(sensor...)
}
