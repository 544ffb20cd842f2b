package kafkasink

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the sink.
func (ks *KafkaSink) ConnectLogger(loggers ...types.Logger) {
	ks.loggersLock.Lock()
	ks.loggers = append(ks.loggers, loggers...)
	ks.loggersLock.Unlock()
}

// ConnectSensor attaches sensors to the sink.
func (ks *KafkaSink) ConnectSensor(sensors ...types.Sensor) {
	ks.sensorLock.Lock()
	ks.sensors = append(ks.sensors, sensors...)
	ks.sensorLock.Unlock()
}

// GetComponentMetadata returns the sink metadata.
func (ks *KafkaSink) GetComponentMetadata() types.ComponentMetadata {
	return ks.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (ks *KafkaSink) SetComponentMetadata(name string, id string) {
	ks.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: ks.componentMetadata.Type}
}

func (ks *KafkaSink) snapshotLoggers() []types.Logger {
	ks.loggersLock.Lock()
	loggers := make([]types.Logger, len(ks.loggers))
	copy(loggers, ks.loggers)
	ks.loggersLock.Unlock()
	return loggers
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (ks *KafkaSink) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range ks.snapshotLoggers() {
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
