package metrics

import (
	"errors"
	"time"
)

// ErrUnavailable marks a reading that failed for this tick (permission
// denied, unsupported platform feature, missing hardware). The loop treats
// it as non-fatal: it keeps the previous value and retries next tick.
var ErrUnavailable = errors.New("metrics unavailable")

// Sample is one measurement tick. It is assembled by the sample loop and
// discarded after its derived state (net rate, CPU history slot) is folded
// in.
type Sample struct {
	Timestamp time.Time

	CPUPercent float64 // 0-100

	MemoryUsed  uint64 // bytes
	MemoryTotal uint64

	DiskUsed  uint64 // bytes, monitored path
	DiskTotal uint64

	// Cumulative counters since boot; differenced into a NetRate.
	NetBytesSent uint64
	NetBytesRecv uint64

	Uptime  uint64     // seconds
	LoadAvg [3]float64 // 1, 5, 15 min

	GPU          GPUReading
	GPUAvailable bool

	Processes []ProcessInfo
}

// MemoryReading holds a point-in-time RAM measurement.
type MemoryReading struct {
	Used  uint64
	Total uint64
}

// DiskReading holds a point-in-time usage measurement for one mount.
type DiskReading struct {
	Used  uint64
	Total uint64
}

// NetCounters holds cumulative network byte counters since boot.
type NetCounters struct {
	BytesSent uint64
	BytesRecv uint64
}

// GPUReading holds a point-in-time NVIDIA GPU measurement.
type GPUReading struct {
	Name        string
	Utilization float64 // 0-100
	MemoryUsed  uint64  // bytes
	MemoryTotal uint64
	Temperature uint32 // Celsius
}

// ProcessInfo is one row of the top-processes panel.
type ProcessInfo struct {
	PID        int32
	User       string
	Command    string
	CPUPercent float64
	MemPercent float64
	Memory     uint64 // RSS bytes
}

// Provider supplies point-in-time readings. Each reading may fail
// independently with an error wrapping ErrUnavailable; Init failure is fatal
// at startup.
type Provider interface {
	Init() error
	CPUPercent() (float64, error)
	Memory() (MemoryReading, error)
	Disk(path string) (DiskReading, error)
	NetworkCounters() (NetCounters, error)
	GPU() (GPUReading, error)
	TopProcesses(n int) ([]ProcessInfo, error)
	Uptime() (uint64, error)
	LoadAvg() ([3]float64, error)
	Shutdown()
}
