package types

// ComponentMetadata identifies a component instance within the SDK. Every
// component carries one so that log lines and sensor callbacks can name the
// exact queue, writer, or adapter they originated from.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Component class, e.g. "LOG_WRITER" or "CAPACITOR".
	Name string // Optional human-readable name.
}

// Option is a configuration function applied to a component at construction
// time. Components accept a variadic list of these in their constructors.
type Option[T any] func(T)
