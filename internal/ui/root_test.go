package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/taskmon/internal/config"
	"github.com/google/taskmon/internal/logger"
	"github.com/google/taskmon/internal/metrics"
)

// stubProvider returns fixed readings and can be told to fail individual
// readings, which is how the per-tick recovery paths get exercised.
type stubProvider struct {
	cpu      float64
	sent     uint64
	recv     uint64
	failDisk bool
	failCPU  bool
}

func (s *stubProvider) Init() error { return nil }

func (s *stubProvider) CPUPercent() (float64, error) {
	if s.failCPU {
		return 0, metrics.ErrUnavailable
	}
	return s.cpu, nil
}

func (s *stubProvider) Memory() (metrics.MemoryReading, error) {
	return metrics.MemoryReading{Used: 4 << 30, Total: 8 << 30}, nil
}

func (s *stubProvider) Disk(path string) (metrics.DiskReading, error) {
	if s.failDisk {
		return metrics.DiskReading{}, metrics.ErrUnavailable
	}
	return metrics.DiskReading{Used: 1 << 30, Total: 10 << 30}, nil
}

func (s *stubProvider) NetworkCounters() (metrics.NetCounters, error) {
	return metrics.NetCounters{BytesSent: s.sent, BytesRecv: s.recv}, nil
}

func (s *stubProvider) GPU() (metrics.GPUReading, error) {
	return metrics.GPUReading{}, metrics.ErrUnavailable
}

func (s *stubProvider) TopProcesses(n int) ([]metrics.ProcessInfo, error) {
	return nil, nil
}

func (s *stubProvider) Uptime() (uint64, error)      { return 60, nil }
func (s *stubProvider) LoadAvg() ([3]float64, error) { return [3]float64{}, nil }
func (s *stubProvider) Shutdown()                    {}

func testModel(p metrics.Provider, log logger.Logger) RootModel {
	cfg := config.Default()
	cfg.MaxProcesses = 0
	return NewRootModel(p, cfg, log)
}

func tickAt(m RootModel, t time.Time) (RootModel, tea.Cmd) {
	next, cmd := m.Update(TickMsg(t))
	return next.(RootModel), cmd
}

func TestViewBeforeFirstSample(t *testing.T) {
	m := testModel(&stubProvider{}, nil)
	assert.Contains(t, m.View(), "Gathering first sample")
}

func TestSingleTick(t *testing.T) {
	m := testModel(&stubProvider{cpu: 37.5}, nil)

	m, cmd := tickAt(m, time.Now())

	require.NotNil(t, cmd, "loop must reschedule itself")
	assert.True(t, m.haveSample)
	assert.Equal(t, []float64{37.5}, m.history.Snapshot())
	assert.Equal(t, 37.5, m.last.CPUPercent)
	assert.Empty(t, m.stale)
}

func TestNetRateAcrossTicks(t *testing.T) {
	p := &stubProvider{sent: 1000, recv: 2000}
	m := testModel(p, nil)

	t0 := time.Now()
	m, _ = tickAt(m, t0)
	assert.Zero(t, m.netRate.SentPerSec, "first tick has no previous counters")

	p.sent, p.recv = 3000, 6000
	m, _ = tickAt(m, t0.Add(2*time.Second))
	assert.Equal(t, 1000.0, m.netRate.SentPerSec)
	assert.Equal(t, 2000.0, m.netRate.RecvPerSec)
}

func TestDiskFailureDoesNotStopLoop(t *testing.T) {
	p := &stubProvider{cpu: 10, failDisk: true}
	log := logger.NewBufferLogger()
	m := testModel(p, log)

	t0 := time.Now()
	m, cmd := tickAt(m, t0)

	require.NotNil(t, cmd)
	assert.Contains(t, m.stale, "disk")
	assert.True(t, log.HasLevel("warn"))
	assert.Zero(t, m.last.DiskTotal)

	// The next tick retries and recovers.
	p.failDisk = false
	m, _ = tickAt(m, t0.Add(time.Second))
	assert.Empty(t, m.stale)
	assert.Equal(t, uint64(10<<30), m.last.DiskTotal)
}

func TestFailedReadingKeepsPreviousValue(t *testing.T) {
	p := &stubProvider{cpu: 55}
	m := testModel(p, nil)

	t0 := time.Now()
	m, _ = tickAt(m, t0)

	p.failCPU = true
	m, _ = tickAt(m, t0.Add(time.Second))

	assert.Contains(t, m.stale, "cpu")
	assert.Equal(t, 55.0, m.last.CPUPercent, "previous value is reused")
	assert.Equal(t, []float64{55, 55}, m.history.Snapshot())
}

func TestCPUSampleClampedBeforeHistory(t *testing.T) {
	m := testModel(&stubProvider{cpu: 150}, nil)

	m, _ = tickAt(m, time.Now())
	assert.Equal(t, []float64{100}, m.history.Snapshot())
}

func TestHistoryBoundedOverManyTicks(t *testing.T) {
	m := testModel(&stubProvider{cpu: 20}, nil)

	base := time.Now()
	for i := 0; i < 100; i++ {
		m, _ = tickAt(m, base.Add(time.Duration(i)*time.Second))
	}
	assert.Equal(t, config.Default().HistoryLength, m.history.Len())
}

func TestQuitKey(t *testing.T) {
	m := testModel(&stubProvider{}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPauseSkipsSampling(t *testing.T) {
	m := testModel(&stubProvider{cpu: 30}, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(RootModel)
	m, cmd := tickAt(m, time.Now())

	require.NotNil(t, cmd, "ticks keep flowing while paused")
	assert.Equal(t, 0, m.history.Len())
}

func TestViewAfterTickRendersFrame(t *testing.T) {
	m := testModel(&stubProvider{cpu: 42}, nil)
	m, _ = tickAt(m, time.Now())

	out := m.View()
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "42.0%")
	assert.Contains(t, out, "Memory")
}
