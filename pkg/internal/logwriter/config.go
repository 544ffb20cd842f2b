package logwriter

import (
	"time"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// SetBaseURL sets the collection service base URL, forwarded to the push
// client when one is attached.
func (lw *LogWriter) SetBaseURL(baseURL string) {
	lw.configLock.Lock()
	lw.baseURL = baseURL
	lw.configLock.Unlock()
	lw.clientLock.Lock()
	if lw.pushClient != nil {
		lw.pushClient.SetBaseURL(baseURL)
	}
	lw.clientLock.Unlock()
}

// SetAPIKey sets the push credential, forwarded to the push client when one is
// attached.
func (lw *LogWriter) SetAPIKey(apiKey string) {
	lw.configLock.Lock()
	lw.apiKey = apiKey
	lw.configLock.Unlock()
	lw.clientLock.Lock()
	if lw.pushClient != nil {
		lw.pushClient.SetAPIKey(apiKey)
	}
	lw.clientLock.Unlock()
}

// SetRepository names the repository every record and storage key is scoped to.
func (lw *LogWriter) SetRepository(repository string) {
	lw.configLock.Lock()
	lw.repository = repository
	lw.configLock.Unlock()
}

// GetRepository returns the configured repository.
func (lw *LogWriter) GetRepository() string {
	lw.configLock.Lock()
	defer lw.configLock.Unlock()
	return lw.repository
}

// SetAutoFlush starts or stops the periodic flush timer.
func (lw *LogWriter) SetAutoFlush(enabled bool) {
	lw.configLock.Lock()
	lw.autoFlush = enabled
	lw.configLock.Unlock()
	if enabled {
		lw.startTimer()
	} else {
		lw.stopTimer()
	}
}

// SetFlushInterval sets the periodic flush cadence. Takes effect on the next
// timer cycle.
func (lw *LogWriter) SetFlushInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	lw.configLock.Lock()
	lw.flushInterval = interval
	lw.configLock.Unlock()
}

// SetMaxInMemoryLogs sets the backpressure ceiling: a Commit that leaves more
// than this many records queued triggers an async flush. Queue capacities are
// fixed at construction.
func (lw *LogWriter) SetMaxInMemoryLogs(max int) {
	if max <= 0 {
		return
	}
	lw.configLock.Lock()
	lw.maxInMemoryLogs = max
	lw.configLock.Unlock()
}

// SetRaiseExceptions switches identifier validation between strict (Commit
// returns the error) and lenient (drop with a warning).
func (lw *LogWriter) SetRaiseExceptions(raise bool) {
	lw.configLock.Lock()
	lw.raiseExceptions = raise
	lw.configLock.Unlock()
}

// SetScratchDir sets the directory fallback files are written under. Empty
// means the system temp directory.
func (lw *LogWriter) SetScratchDir(dir string) {
	lw.configLock.Lock()
	lw.scratchDir = dir
	lw.configLock.Unlock()
}

// SetCompression selects push-body compression, forwarded to the push client
// when one is attached.
func (lw *LogWriter) SetCompression(algorithm types.CompressionAlgorithm) {
	lw.configLock.Lock()
	lw.compression = algorithm
	lw.configLock.Unlock()
	lw.clientLock.Lock()
	if lw.pushClient != nil {
		lw.pushClient.SetCompression(algorithm)
	}
	lw.clientLock.Unlock()
}

// SetDebug enables verbose per-record logging.
func (lw *LogWriter) SetDebug(debug bool) {
	lw.configLock.Lock()
	lw.debug = debug
	lw.configLock.Unlock()
}

// SetPushClient attaches the delivery transport and pushes the writer's
// endpoint configuration onto it.
func (lw *LogWriter) SetPushClient(client types.PushClient) {
	lw.configLock.Lock()
	baseURL, apiKey, algorithm := lw.baseURL, lw.apiKey, lw.compression
	lw.configLock.Unlock()

	lw.clientLock.Lock()
	lw.pushClient = client
	lw.clientLock.Unlock()
	if client == nil {
		return
	}
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if apiKey != "" {
		client.SetAPIKey(apiKey)
	}
	client.SetCompression(algorithm)
}

// SetStorageClient attaches the signed-URL storage adapter used for attachment
// and large-record uploads.
func (lw *LogWriter) SetStorageClient(client types.StorageClient) {
	lw.clientLock.Lock()
	lw.storageClient = client
	lw.clientLock.Unlock()
}

// SetMirrorSink attaches the optional best-effort batch mirror.
func (lw *LogWriter) SetMirrorSink(sink types.BatchSink) {
	lw.clientLock.Lock()
	lw.mirrorSink = sink
	lw.clientLock.Unlock()
}

func (lw *LogWriter) getPushClient() types.PushClient {
	lw.clientLock.Lock()
	defer lw.clientLock.Unlock()
	return lw.pushClient
}

func (lw *LogWriter) getStorageClient() types.StorageClient {
	lw.clientLock.Lock()
	defer lw.clientLock.Unlock()
	return lw.storageClient
}

func (lw *LogWriter) getMirrorSink() types.BatchSink {
	lw.clientLock.Lock()
	defer lw.clientLock.Unlock()
	return lw.mirrorSink
}
