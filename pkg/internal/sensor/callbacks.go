package sensor

import "github.com/joeydtaylor/filament/pkg/internal/types"

// RegisterOnCommit adds callbacks invoked after each accepted commit.
func (s *Sensor) RegisterOnCommit(callbacks ...func(types.ComponentMetadata, *types.CommitLog)) {
	s.callbackLock.Lock()
	s.onCommit = append(s.onCommit, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnCommit triggers all commit callbacks.
func (s *Sensor) InvokeOnCommit(cm types.ComponentMetadata, log *types.CommitLog) {
	s.callbackLock.Lock()
	callbacks := s.onCommit
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, log)
	}
}

// RegisterOnCapacitorEvict adds callbacks invoked when a capacitor discards
// its oldest items.
func (s *Sensor) RegisterOnCapacitorEvict(callbacks ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	s.onCapacitorEvict = append(s.onCapacitorEvict, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnCapacitorEvict triggers all eviction callbacks.
func (s *Sensor) InvokeOnCapacitorEvict(cm types.ComponentMetadata, evicted int) {
	s.callbackLock.Lock()
	callbacks := s.onCapacitorEvict
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, evicted)
	}
}

// RegisterOnFlushComplete adds callbacks invoked after a flush cycle pushes
// its chunks.
func (s *Sensor) RegisterOnFlushComplete(callbacks ...func(cm types.ComponentMetadata, chunks int, records int)) {
	s.callbackLock.Lock()
	s.onFlushComplete = append(s.onFlushComplete, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnFlushComplete triggers all flush-complete callbacks.
func (s *Sensor) InvokeOnFlushComplete(cm types.ComponentMetadata, chunks int, records int) {
	s.callbackLock.Lock()
	callbacks := s.onFlushComplete
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, chunks, records)
	}
}

// RegisterOnPushFailure adds callbacks invoked when a push attempt fails.
func (s *Sensor) RegisterOnPushFailure(callbacks ...func(types.ComponentMetadata, error)) {
	s.callbackLock.Lock()
	s.onPushFailure = append(s.onPushFailure, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnPushFailure triggers all push-failure callbacks.
func (s *Sensor) InvokeOnPushFailure(cm types.ComponentMetadata, err error) {
	s.callbackLock.Lock()
	callbacks := s.onPushFailure
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, err)
	}
}

// RegisterOnUploadRetry adds callbacks invoked when an upload is requeued for
// another attempt.
func (s *Sensor) RegisterOnUploadRetry(callbacks ...func(cm types.ComponentMetadata, id string, attempt int)) {
	s.callbackLock.Lock()
	s.onUploadRetry = append(s.onUploadRetry, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnUploadRetry triggers all upload-retry callbacks.
func (s *Sensor) InvokeOnUploadRetry(cm types.ComponentMetadata, id string, attempt int) {
	s.callbackLock.Lock()
	callbacks := s.onUploadRetry
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, id, attempt)
	}
}

// RegisterOnUploadDrop adds callbacks invoked when an upload exhausts its
// retry cap and is discarded.
func (s *Sensor) RegisterOnUploadDrop(callbacks ...func(cm types.ComponentMetadata, id string)) {
	s.callbackLock.Lock()
	s.onUploadDrop = append(s.onUploadDrop, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnUploadDrop triggers all upload-drop callbacks.
func (s *Sensor) InvokeOnUploadDrop(cm types.ComponentMetadata, id string) {
	s.callbackLock.Lock()
	callbacks := s.onUploadDrop
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, id)
	}
}

// RegisterOnFallbackPersist adds callbacks invoked when undelivered records
// are written to a local fallback file.
func (s *Sensor) RegisterOnFallbackPersist(callbacks ...func(cm types.ComponentMetadata, path string, records int)) {
	s.callbackLock.Lock()
	s.onFallbackPersist = append(s.onFallbackPersist, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnFallbackPersist triggers all fallback-persist callbacks.
func (s *Sensor) InvokeOnFallbackPersist(cm types.ComponentMetadata, path string, records int) {
	s.callbackLock.Lock()
	callbacks := s.onFallbackPersist
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, path, records)
	}
}

// RegisterOnFallbackReplay adds callbacks invoked when a fallback file is
// re-delivered and removed.
func (s *Sensor) RegisterOnFallbackReplay(callbacks ...func(cm types.ComponentMetadata, path string)) {
	s.callbackLock.Lock()
	s.onFallbackReplay = append(s.onFallbackReplay, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnFallbackReplay triggers all fallback-replay callbacks.
func (s *Sensor) InvokeOnFallbackReplay(cm types.ComponentMetadata, path string) {
	s.callbackLock.Lock()
	callbacks := s.onFallbackReplay
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, path)
	}
}

// RegisterOnInterlockTimeout adds callbacks invoked when a flush gate times
// out.
func (s *Sensor) RegisterOnInterlockTimeout(callbacks ...func(cm types.ComponentMetadata, name string)) {
	s.callbackLock.Lock()
	s.onInterlockTimeout = append(s.onInterlockTimeout, callbacks...)
	s.callbackLock.Unlock()
}

// InvokeOnInterlockTimeout triggers all interlock-timeout callbacks.
func (s *Sensor) InvokeOnInterlockTimeout(cm types.ComponentMetadata, name string) {
	s.callbackLock.Lock()
	callbacks := s.onInterlockTimeout
	s.callbackLock.Unlock()
	for _, callback := range callbacks {
		callback(cm, name)
	}
}
