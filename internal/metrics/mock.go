package metrics

import "math/rand"

// MockProvider simulates a busy machine for demos and tests. Readings wander
// randomly inside plausible ranges; the network counters only ever grow, so
// derived rates behave like the real thing.
type MockProvider struct {
	cpu       float64
	netSent   uint64
	netRecv   uint64
	diskFail  bool
	initError error
}

const (
	mockMemTotal  = 32 * 1024 * 1024 * 1024
	mockDiskTotal = 512 * 1024 * 1024 * 1024
	mockVRAMTotal = 24576 * 1024 * 1024
)

func (m *MockProvider) Init() error {
	if m.initError != nil {
		return m.initError
	}
	m.cpu = 25
	return nil
}

func (m *MockProvider) CPUPercent() (float64, error) {
	// Random walk, clamped so the graph shows motion without whiplash.
	m.cpu += rand.Float64()*20 - 10
	if m.cpu < 2 {
		m.cpu = 2
	}
	if m.cpu > 98 {
		m.cpu = 98
	}
	return m.cpu, nil
}

func (m *MockProvider) Memory() (MemoryReading, error) {
	used := uint64(float64(mockMemTotal) * (0.35 + rand.Float64()*0.1))
	return MemoryReading{Used: used, Total: mockMemTotal}, nil
}

func (m *MockProvider) Disk(path string) (DiskReading, error) {
	if m.diskFail {
		return DiskReading{}, unavailable("disk usage "+path, nil)
	}
	return DiskReading{Used: mockDiskTotal / 3, Total: mockDiskTotal}, nil
}

func (m *MockProvider) NetworkCounters() (NetCounters, error) {
	m.netSent += uint64(rand.Intn(200 * 1024))
	m.netRecv += uint64(rand.Intn(2 * 1024 * 1024))
	return NetCounters{BytesSent: m.netSent, BytesRecv: m.netRecv}, nil
}

func (m *MockProvider) GPU() (GPUReading, error) {
	return GPUReading{
		Name:        "NVIDIA GeForce RTX 4090",
		Utilization: 40 + rand.Float64()*30,
		MemoryUsed:  mockVRAMTotal / 3,
		MemoryTotal: mockVRAMTotal,
		Temperature: uint32(55 + rand.Intn(15)),
	}, nil
}

func (m *MockProvider) TopProcesses(n int) ([]ProcessInfo, error) {
	users := []string{"root", "jules", "systemd"}
	cmds := []string{"chrome", "code", "go", "kworker", "bash"}

	procs := make([]ProcessInfo, n)
	for i := range procs {
		procs[i] = ProcessInfo{
			PID:        int32(1000 + i),
			User:       users[rand.Intn(len(users))],
			Command:    cmds[rand.Intn(len(cmds))],
			CPUPercent: rand.Float64() * 40,
			MemPercent: rand.Float64() * 5,
			Memory:     uint64(rand.Intn(2048)) * 1024 * 1024,
		}
	}
	return procs, nil
}

func (m *MockProvider) Uptime() (uint64, error) {
	return 4*24*3600 + 3723, nil
}

func (m *MockProvider) LoadAvg() ([3]float64, error) {
	return [3]float64{1.5, 1.2, 0.8}, nil
}

func (m *MockProvider) Shutdown() {}
