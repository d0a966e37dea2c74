package metrics

import (
	"fmt"
	"sort"

	"github.com/mindprince/gonvml"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/google/taskmon/internal/logger"
)

// RealProvider reads live system metrics through gopsutil, plus NVIDIA GPU
// telemetry through NVML when available.
type RealProvider struct {
	log    logger.Logger
	hasGPU bool

	// Persistent process handles so per-process CPU percentages are
	// computed against the previous tick rather than process start.
	procCache map[int32]*process.Process
}

// NewRealProvider creates a provider that logs through log. A nil log
// disables logging.
func NewRealProvider(log logger.Logger) *RealProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &RealProvider{log: log}
}

// Init verifies that the core CPU reading works and probes for a GPU. A
// missing GPU is not an error; an unreadable CPU is, since every later tick
// would fail the same way.
func (r *RealProvider) Init() error {
	if _, err := cpu.Percent(0, false); err != nil {
		return fmt.Errorf("cpu sampling unsupported on this platform: %w", err)
	}

	if err := gonvml.Initialize(); err != nil {
		r.log.Debug("NVML initialization failed, GPU metrics disabled: %v", err)
		r.hasGPU = false
	} else {
		r.hasGPU = true
	}

	r.procCache = make(map[int32]*process.Process)
	return nil
}

func (r *RealProvider) CPUPercent() (float64, error) {
	// Interval 0 measures against the previous call, so the tick cadence
	// defines the averaging window.
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return 0, unavailable("cpu percent", err)
	}
	return percents[0], nil
}

func (r *RealProvider) Memory() (MemoryReading, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryReading{}, unavailable("virtual memory", err)
	}
	return MemoryReading{Used: vm.Used, Total: vm.Total}, nil
}

func (r *RealProvider) Disk(path string) (DiskReading, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskReading{}, unavailable("disk usage "+path, err)
	}
	return DiskReading{Used: usage.Used, Total: usage.Total}, nil
}

func (r *RealProvider) NetworkCounters() (NetCounters, error) {
	// pernic=false aggregates all interfaces into one counter pair.
	counters, err := net.IOCounters(false)
	if err != nil || len(counters) == 0 {
		return NetCounters{}, unavailable("network counters", err)
	}
	return NetCounters{
		BytesSent: counters[0].BytesSent,
		BytesRecv: counters[0].BytesRecv,
	}, nil
}

func (r *RealProvider) GPU() (GPUReading, error) {
	if !r.hasGPU {
		return GPUReading{}, unavailable("gpu", nil)
	}

	count, err := gonvml.DeviceCount()
	if err != nil || count == 0 {
		return GPUReading{}, unavailable("gpu", err)
	}
	dev, err := gonvml.DeviceHandleByIndex(0)
	if err != nil {
		return GPUReading{}, unavailable("gpu handle", err)
	}

	reading := GPUReading{}
	reading.Name, _ = dev.Name()
	if util, _, err := dev.UtilizationRates(); err == nil {
		reading.Utilization = float64(util)
	}
	if total, used, err := dev.MemoryInfo(); err == nil {
		reading.MemoryTotal = total
		reading.MemoryUsed = used
	}
	if temp, err := dev.Temperature(); err == nil {
		reading.Temperature = uint32(temp)
	}
	return reading, nil
}

func (r *RealProvider) TopProcesses(n int) ([]ProcessInfo, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, unavailable("process list", err)
	}

	newCache := make(map[int32]*process.Process, len(pids))
	infos := make([]ProcessInfo, 0, len(pids))

	for _, pid := range pids {
		p, ok := r.procCache[pid]
		if !ok {
			p, err = process.NewProcess(pid)
			if err != nil {
				continue
			}
		}
		newCache[pid] = p

		name, _ := p.Name()
		user, _ := p.Username()
		cpuP, _ := p.Percent(0)
		memP, _ := p.MemoryPercent()
		rss := uint64(0)
		if memInfo, _ := p.MemoryInfo(); memInfo != nil {
			rss = memInfo.RSS
		}

		infos = append(infos, ProcessInfo{
			PID:        pid,
			User:       user,
			Command:    name,
			CPUPercent: cpuP,
			MemPercent: float64(memP),
			Memory:     rss,
		})
	}
	r.procCache = newCache

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CPUPercent > infos[j].CPUPercent
	})
	if n > 0 && len(infos) > n {
		infos = infos[:n]
	}
	return infos, nil
}

func (r *RealProvider) Uptime() (uint64, error) {
	uptime, err := host.Uptime()
	if err != nil {
		return 0, unavailable("uptime", err)
	}
	return uptime, nil
}

func (r *RealProvider) LoadAvg() ([3]float64, error) {
	avg, err := load.Avg()
	if err != nil {
		return [3]float64{}, unavailable("load average", err)
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

func (r *RealProvider) Shutdown() {
	if r.hasGPU {
		_ = gonvml.Shutdown()
	}
}

func unavailable(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", what, ErrUnavailable)
	}
	return fmt.Errorf("%s: %w: %v", what, ErrUnavailable, err)
}
