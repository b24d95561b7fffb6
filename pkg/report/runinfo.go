package report

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// RunInfo captures process-level context for a measurement run.
type RunInfo struct {
	Hostname   string  `json:"hostname"`
	PID        int     `json:"pid"`
	NumCPU     int     `json:"num_cpu"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUSeconds float64 `json:"cpu_seconds"`
}

// CollectRunInfo gathers run metadata for the current process. Fields that
// cannot be read are left at their zero values.
func CollectRunInfo() RunInfo {
	info := RunInfo{
		PID:    os.Getpid(),
		NumCPU: runtime.NumCPU(),
	}
	if host, err := os.Hostname(); err == nil {
		info.Hostname = host
	}

	proc, err := process.NewProcess(int32(info.PID))
	if err != nil {
		return info
	}
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		info.RSSBytes = mem.RSS
	}
	if times, err := proc.Times(); err == nil && times != nil {
		info.CPUSeconds = times.User + times.System
	}
	return info
}
