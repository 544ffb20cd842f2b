package types

// Sensor observes delivery-engine events through registered callbacks. Tests
// and host applications use it to watch commits, evictions, flush outcomes,
// upload retries, and fallback persistence without touching engine internals.
type Sensor interface {
	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)

	RegisterOnCommit(...func(ComponentMetadata, *CommitLog))
	InvokeOnCommit(ComponentMetadata, *CommitLog)

	RegisterOnCapacitorEvict(...func(ComponentMetadata, int))
	InvokeOnCapacitorEvict(ComponentMetadata, int)

	RegisterOnFlushComplete(...func(cm ComponentMetadata, chunks int, records int))
	InvokeOnFlushComplete(cm ComponentMetadata, chunks int, records int)

	RegisterOnPushFailure(...func(ComponentMetadata, error))
	InvokeOnPushFailure(ComponentMetadata, error)

	RegisterOnUploadRetry(...func(cm ComponentMetadata, id string, attempt int))
	InvokeOnUploadRetry(cm ComponentMetadata, id string, attempt int)

	RegisterOnUploadDrop(...func(cm ComponentMetadata, id string))
	InvokeOnUploadDrop(cm ComponentMetadata, id string)

	RegisterOnFallbackPersist(...func(cm ComponentMetadata, path string, records int))
	InvokeOnFallbackPersist(cm ComponentMetadata, path string, records int)

	RegisterOnFallbackReplay(...func(cm ComponentMetadata, path string))
	InvokeOnFallbackReplay(cm ComponentMetadata, path string)

	RegisterOnInterlockTimeout(...func(cm ComponentMetadata, name string))
	InvokeOnInterlockTimeout(cm ComponentMetadata, name string)
}
