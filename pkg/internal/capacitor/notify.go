package capacitor

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the capacitor.
func (c *Capacitor[T]) ConnectLogger(loggers ...types.Logger) {
	c.loggers = append(c.loggers, loggers...)
}

// ConnectSensor attaches sensors to the capacitor.
func (c *Capacitor[T]) ConnectSensor(sensors ...types.Sensor) {
	c.sensors = append(c.sensors, sensors...)
}

// GetComponentMetadata returns the capacitor metadata.
func (c *Capacitor[T]) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (c *Capacitor[T]) SetComponentMetadata(name string, id string) {
	c.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: c.componentMetadata.Type}
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (c *Capacitor[T]) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range c.loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
