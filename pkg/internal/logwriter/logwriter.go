// Package logwriter implements the delivery engine behind every emitter. The
// writer owns three bounded queues (main records, attachment uploads, oversized
// record offloads), a flush interlock, the retry machinery, and the local disk
// fallback. Commit is a cheap in-memory enqueue; Flush is the only network
// path. One writer per logger instance; writers share nothing.
package logwriter

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joeydtaylor/filament/pkg/internal/capacitor"
	"github.com/joeydtaylor/filament/pkg/internal/compression"
	"github.com/joeydtaylor/filament/pkg/internal/interlock"
	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

const (
	defaultFlushInterval   = 10 * time.Second
	defaultMaxInMemoryLogs = 100

	// flushTimeout bounds how long a Flush caller waits on the interlock
	// before giving up and leaving the cycle to finish in the background.
	flushTimeout = 30 * time.Second

	// maxChunkBytes caps one push body. A chunk closes before adding a line
	// that would push it past the cap.
	maxChunkBytes = 5 * 1024 * 1024

	// largeLogThreshold routes oversized serialized records to object storage
	// instead of the push endpoint.
	largeLogThreshold = 900000

	// maxUploadAttempts caps retries for one storage or attachment upload.
	maxUploadAttempts = 3

	fallbackDirName = "filament"
)

// ErrInvalidIdentifier reports an entity id outside [A-Za-z0-9_-]. Surfaced
// from Commit only when the writer raises exceptions; otherwise the record is
// dropped with a warning.
var ErrInvalidIdentifier = errors.New("logwriter: invalid entity identifier")

// LogWriter is the concrete delivery engine.
type LogWriter struct {
	componentMetadata types.ComponentMetadata
	writerID          string

	configLock      sync.Mutex
	baseURL         string
	apiKey          string
	repository      string
	autoFlush       bool
	flushInterval   time.Duration
	maxInMemoryLogs int
	raiseExceptions bool
	debug           bool
	scratchDir      string
	compression     types.CompressionAlgorithm

	// queueLock serializes access to all three capacitors; capacitors carry
	// no locking of their own.
	queueLock       sync.Mutex
	mainQueue       types.Capacitor[string]
	attachmentQueue types.Capacitor[*types.Element]
	storageQueue    types.Capacitor[*types.Element]

	gate types.Interlock

	clientLock    sync.Mutex
	pushClient    types.PushClient
	storageClient types.StorageClient
	mirrorSink    types.BatchSink

	timerLock   sync.Mutex
	timerCancel chan struct{}
	timerDone   sync.WaitGroup

	stopOnce sync.Once

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewLogWriter constructs a delivery engine. With no options the writer
// auto-flushes every 10s, holds at most 100 records in memory, drops invalid
// identifiers with a warning, and spills failed batches under the system temp
// directory.
func NewLogWriter(options ...types.Option[types.LogWriter]) types.LogWriter {
	lw := &LogWriter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "LOG_WRITER",
		},
		writerID:        uuid.NewString(),
		autoFlush:       true,
		flushInterval:   defaultFlushInterval,
		maxInMemoryLogs: defaultMaxInMemoryLogs,
		compression:     compression.COMPRESS_NONE,
	}
	for _, option := range options {
		option(lw)
	}

	capacity := lw.maxInMemoryLogs
	lw.mainQueue = capacitor.NewCapacitor[string](capacitor.WithCapacity[string](capacity))
	lw.attachmentQueue = capacitor.NewCapacitor[*types.Element](capacitor.WithCapacity[*types.Element](capacity))
	lw.storageQueue = capacitor.NewCapacitor[*types.Element](capacitor.WithCapacity[*types.Element](capacity))
	lw.gate = interlock.NewInterlock("flush")

	lw.loggersLock.Lock()
	loggers := append([]types.Logger(nil), lw.loggers...)
	lw.loggersLock.Unlock()
	lw.sensorLock.Lock()
	sensors := append([]types.Sensor(nil), lw.sensors...)
	lw.sensorLock.Unlock()
	for _, sub := range []interface {
		ConnectLogger(...types.Logger)
		ConnectSensor(...types.Sensor)
	}{lw.mainQueue, lw.attachmentQueue, lw.storageQueue, lw.gate} {
		sub.ConnectLogger(loggers...)
		sub.ConnectSensor(sensors...)
	}

	if lw.autoFlush {
		lw.startTimer()
	}
	return lw
}

// QueueDepth reports the combined length of the three queues.
func (lw *LogWriter) QueueDepth() int {
	lw.queueLock.Lock()
	defer lw.queueLock.Unlock()
	return lw.mainQueue.Len() + lw.attachmentQueue.Len() + lw.storageQueue.Len()
}
