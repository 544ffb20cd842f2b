package sensor

import (
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// HostSnapshot captures process-host resource readings taken alongside a
// delivery event. Used by debug tooling to correlate backpressure with host
// load.
type HostSnapshot struct {
	CPUPercent        float64
	MemoryUsedPercent float64
	MemoryUsedBytes   uint64
}

// SnapshotHost reads current CPU and memory utilization. Failures degrade to
// zero readings; snapshots are diagnostics, never control flow.
func SnapshotHost() HostSnapshot {
	var snap HostSnapshot

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsedPercent = vm.UsedPercent
		snap.MemoryUsedBytes = vm.Used
	}
	return snap
}

// LogHostSnapshot writes a host reading through the sensor's loggers at debug
// level.
func (s *Sensor) LogHostSnapshot() {
	snap := SnapshotHost()

	s.loggersLock.Lock()
	loggers := make([]types.Logger, len(s.loggers))
	copy(loggers, s.loggers)
	s.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil || logger.GetLevel() > types.DebugLevel {
			continue
		}
		logger.Debug(
			"Host snapshot",
			"component", s.componentMetadata,
			"cpuPercent", snap.CPUPercent,
			"memUsedPercent", snap.MemoryUsedPercent,
			"memUsedBytes", snap.MemoryUsedBytes,
		)
	}
}
