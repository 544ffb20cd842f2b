package pushclient

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the adapter.
func (p *PushClient) ConnectLogger(loggers ...types.Logger) {
	p.loggersLock.Lock()
	p.loggers = append(p.loggers, loggers...)
	p.loggersLock.Unlock()
}

// ConnectSensor attaches sensors to the adapter.
func (p *PushClient) ConnectSensor(sensors ...types.Sensor) {
	p.sensorLock.Lock()
	p.sensors = append(p.sensors, sensors...)
	p.sensorLock.Unlock()
}

// GetComponentMetadata returns the adapter metadata.
func (p *PushClient) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// SetComponentMetadata sets the component name and id.
func (p *PushClient) SetComponentMetadata(name string, id string) {
	p.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: p.componentMetadata.Type}
}

func (p *PushClient) snapshotLoggers() []types.Logger {
	p.loggersLock.Lock()
	loggers := make([]types.Logger, len(p.loggers))
	copy(loggers, p.loggers)
	p.loggersLock.Unlock()
	return loggers
}

func (p *PushClient) snapshotSensors() []types.Sensor {
	p.sensorLock.Lock()
	sensors := make([]types.Sensor, len(p.sensors))
	copy(sensors, p.sensors)
	p.sensorLock.Unlock()
	return sensors
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (p *PushClient) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range p.snapshotLoggers() {
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
