package types

// Capacitor is a bounded FIFO buffer. When charge exceeds capacity the oldest
// items are discarded, silently, by contract: the delivery engine prefers
// losing the oldest telemetry to blocking producers or growing without bound.
//
// A Capacitor has no locking of its own; the owning component serializes
// access around it.
type Capacitor[T any] interface {
	// Enqueue appends item, evicting the single oldest item first if the
	// capacitor is full.
	Enqueue(item T)

	// EnqueueAll appends items in order, evicting in one step only as many
	// oldest items as needed to fit.
	EnqueueAll(items []T)

	// DequeueAll returns the buffered items in FIFO order and clears the
	// capacitor.
	DequeueAll() []T

	// Len reports the number of buffered items.
	Len() int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
