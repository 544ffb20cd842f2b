package storageclient

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the adapter.
func (sc *StorageClient) ConnectLogger(loggers ...types.Logger) {
	sc.loggersLock.Lock()
	sc.loggers = append(sc.loggers, loggers...)
	sc.loggersLock.Unlock()
}

// ConnectSensor attaches sensors to the adapter.
func (sc *StorageClient) ConnectSensor(sensors ...types.Sensor) {
	sc.sensorLock.Lock()
	sc.sensors = append(sc.sensors, sensors...)
	sc.sensorLock.Unlock()
}

// GetComponentMetadata returns the adapter metadata.
func (sc *StorageClient) GetComponentMetadata() types.ComponentMetadata {
	return sc.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (sc *StorageClient) SetComponentMetadata(name string, id string) {
	sc.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: sc.componentMetadata.Type}
}

func (sc *StorageClient) snapshotLoggers() []types.Logger {
	sc.loggersLock.Lock()
	loggers := make([]types.Logger, len(sc.loggers))
	copy(loggers, sc.loggers)
	sc.loggersLock.Unlock()
	return loggers
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (sc *StorageClient) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range sc.snapshotLoggers() {
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
