// Package sysinfo samples resource usage for the status bar.
package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type Snapshot struct {
	PID           int32
	ProcessCPU    float64
	ProcessRSS    uint64
	SystemCPU     float64
	SystemMemUsed float64
	CPUCores      int
}

// Sample reads usage for pid and the host. Host figures that cannot be read
// are left at zero; a missing process is an error.
func Sample(pid int32) (Snapshot, error) {
	snap := Snapshot{PID: pid}

	p, err := process.NewProcess(pid)
	if err != nil {
		return snap, fmt.Errorf("process %d: %w", pid, err)
	}
	if cpuP, err := p.CPUPercent(); err == nil {
		snap.ProcessCPU = cpuP
	}
	if memInfo, err := p.MemoryInfo(); err == nil && memInfo != nil {
		snap.ProcessRSS = memInfo.RSS
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.SystemCPU = percents[0]
	}
	snap.CPUCores, _ = cpu.Counts(true)

	if vmStat, err := mem.VirtualMemory(); err == nil {
		snap.SystemMemUsed = vmStat.UsedPercent
	}
	return snap, nil
}

// String is the compact form shown in the status bar.
func (s Snapshot) String() string {
	return fmt.Sprintf("CPU %4.1f%% • RSS %s • Mem %4.1f%%", s.ProcessCPU, formatBytes(s.ProcessRSS), s.SystemMemUsed)
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
