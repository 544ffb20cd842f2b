package logwriter

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the writer.
func (lw *LogWriter) ConnectLogger(loggers ...types.Logger) {
	lw.loggersLock.Lock()
	lw.loggers = append(lw.loggers, loggers...)
	lw.loggersLock.Unlock()
}

// ConnectSensor attaches sensors to the writer.
func (lw *LogWriter) ConnectSensor(sensors ...types.Sensor) {
	lw.sensorLock.Lock()
	lw.sensors = append(lw.sensors, sensors...)
	lw.sensorLock.Unlock()
}

// GetComponentMetadata returns the writer metadata.
func (lw *LogWriter) GetComponentMetadata() types.ComponentMetadata {
	return lw.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (lw *LogWriter) SetComponentMetadata(name string, id string) {
	lw.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: lw.componentMetadata.Type}
}

func (lw *LogWriter) snapshotLoggers() []types.Logger {
	lw.loggersLock.Lock()
	loggers := make([]types.Logger, len(lw.loggers))
	copy(loggers, lw.loggers)
	lw.loggersLock.Unlock()
	return loggers
}

func (lw *LogWriter) snapshotSensors() []types.Sensor {
	lw.sensorLock.Lock()
	sensors := make([]types.Sensor, len(lw.sensors))
	copy(sensors, lw.sensors)
	lw.sensorLock.Unlock()
	return sensors
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (lw *LogWriter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range lw.snapshotLoggers() {
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
