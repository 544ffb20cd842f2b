package types

// LogLevel represents the severity levels for logging within the SDK.
type LogLevel int

// SinkType identifies a logger sink implementation.
type SinkType string

const (
	FileSink   SinkType = "file"
	StdoutSink SinkType = "stdout"
)

const (
	DebugLevel  LogLevel = iota // DebugLevel indicates debug messages.
	InfoLevel                   // InfoLevel indicates informational messages.
	WarnLevel                   // WarnLevel indicates warning messages.
	ErrorLevel                  // ErrorLevel indicates error messages.
	DPanicLevel                 // DPanicLevel panics in development, logs an error in production.
	PanicLevel                  // PanicLevel logs and panics.
	FatalLevel                  // FatalLevel logs and exits.
)

// SinkConfig describes one logging sink destination.
type SinkConfig struct {
	Type   string                 // Sink type, e.g. "file" or "stdout".
	Config map[string]interface{} // Sink-specific settings, e.g. a file path.
}

// Logger is the structured logging interface used by every component. The SDK
// never logs directly through zap; it goes through this interface so callers
// can substitute their own implementation.
type Logger interface {
	GetLevel() LogLevel
	SetLevel(LogLevel)
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	DPanic(msg string, keysAndValues ...interface{})
	Panic(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
	Flush() error
	AddSink(identifier string, config SinkConfig) error
	RemoveSink(identifier string) error
	ListSinks() ([]string, error)
}
