package interlock

import "github.com/joeydtaylor/filament/pkg/internal/types"

// ConnectLogger attaches loggers to the gate.
func (g *Interlock) ConnectLogger(loggers ...types.Logger) {
	g.stateLock.Lock()
	g.loggers = append(g.loggers, loggers...)
	g.stateLock.Unlock()
}

// ConnectSensor attaches sensors observing timeout events.
func (g *Interlock) ConnectSensor(sensors ...types.Sensor) {
	g.stateLock.Lock()
	g.sensors = append(g.sensors, sensors...)
	g.stateLock.Unlock()
}

// GetComponentMetadata returns the gate metadata.
func (g *Interlock) GetComponentMetadata() types.ComponentMetadata {
	g.stateLock.Lock()
	metadata := g.componentMetadata
	g.stateLock.Unlock()
	return metadata
}

// SetComponentMetadata sets the component name and id.
func (g *Interlock) SetComponentMetadata(name string, id string) {
	g.stateLock.Lock()
	g.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: g.componentMetadata.Type}
	g.stateLock.Unlock()
}

func (g *Interlock) snapshotLoggers() []types.Logger {
	g.stateLock.Lock()
	loggers := make([]types.Logger, len(g.loggers))
	copy(loggers, g.loggers)
	g.stateLock.Unlock()
	return loggers
}

func (g *Interlock) snapshotSensors() []types.Sensor {
	g.stateLock.Lock()
	sensors := make([]types.Sensor, len(g.sensors))
	copy(sensors, g.sensors)
	g.stateLock.Unlock()
	return sensors
}

// NotifyLoggers sends a message to every attached logger at or above level.
func (g *Interlock) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	for _, logger := range g.snapshotLoggers() {
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
