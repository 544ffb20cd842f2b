package types

import "time"

// CompressionAlgorithm selects the push-body compression codec. Constants live
// in the compression package.
type CompressionAlgorithm int

// WriterConfig bundles the common writer settings for one-shot configuration.
// Zero string, duration and int fields keep the writer's defaults; boolean
// fields are applied as given.
type WriterConfig struct {
	BaseURL         string
	APIKey          string
	Repository      string
	AutoFlush       bool
	FlushInterval   time.Duration
	MaxInMemoryLogs int
	RaiseExceptions bool
	Debug           bool
}

// LogWriter is the delivery engine: it owns the three capacitors (main,
// attachment, storage), the flush interlock, and the retry/offload/fallback
// machinery. One writer per logger instance; writers never share state.
type LogWriter interface {
	// Commit serializes, validates, and routes one commit log. It never
	// performs network I/O and never surfaces delivery errors; the only
	// possible error is identifier validation in strict mode.
	Commit(log *CommitLog) error

	// Flush drains the queues and pushes batches now, in addition to the
	// periodic timer. Safe to call concurrently; cycles are serialized by
	// the interlock.
	Flush()

	// Stop halts the periodic timer, runs one final best-effort flush, and
	// releases network resources. In-flight uploads are awaited, not aborted.
	Stop() error

	// QueueDepth reports the combined length of the three capacitors.
	QueueDepth() int

	SetBaseURL(string)
	SetAPIKey(string)
	SetRepository(string)
	GetRepository() string
	SetAutoFlush(bool)
	SetFlushInterval(time.Duration)
	SetMaxInMemoryLogs(int)
	SetRaiseExceptions(bool)
	SetScratchDir(string)
	SetCompression(CompressionAlgorithm)
	SetPushClient(PushClient)
	SetStorageClient(StorageClient)
	SetMirrorSink(BatchSink)

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
