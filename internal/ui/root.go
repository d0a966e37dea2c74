package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/google/taskmon/internal/config"
	"github.com/google/taskmon/internal/history"
	"github.com/google/taskmon/internal/logger"
	"github.com/google/taskmon/internal/metrics"
)

// TickMsg drives one sampling iteration.
type TickMsg time.Time

func tickAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// RootModel is the sample loop. Each tick it pulls readings from the
// provider, derives the network rate, pushes the CPU sample into the rolling
// history, and hands a fully-derived snapshot to the frame renderer. All
// mutable state (history, previous counters, last-known sample) lives here
// and is touched only inside Update, so rendering always sees one
// consistent tick.
type RootModel struct {
	provider metrics.Provider
	cfg      *config.Config
	log      logger.Logger

	rate    *metrics.RateComputer
	history *history.Buffer

	last       metrics.Sample // last-known-good readings, reused when one fails
	netRate    metrics.NetRate
	stale      []string
	haveSample bool
	prevTick   time.Time

	procs  ProcessModel
	footer FooterModel

	width  int
	height int
	paused bool
}

func NewRootModel(provider metrics.Provider, cfg *config.Config, log logger.Logger) RootModel {
	if log == nil {
		log = logger.Noop()
	}
	return RootModel{
		provider: provider,
		cfg:      cfg,
		log:      log,
		rate:     &metrics.RateComputer{},
		history:  history.New(cfg.HistoryLength),
		procs:    NewProcessModel(cfg.MaxProcesses),
		footer:   NewFooterModel(),
	}
}

func (m RootModel) Init() tea.Cmd {
	// First sample right away; steady cadence after that.
	return tickAfter(0)
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.SetSize(msg.Width)

	case TickMsg:
		if m.paused {
			return m, tickAfter(m.cfg.Interval)
		}

		start := time.Now()
		m = m.sampleTick(time.Time(msg))

		// Sleep only for what is left of the interval. A slow tick rolls
		// straight into the next one; there is no backlog to catch up.
		delay := m.cfg.Interval - time.Since(start)
		if delay < 0 {
			delay = 0
		}
		return m, tickAfter(delay)
	}

	return m, nil
}

// sampleTick runs one Sampling → Deriving iteration and leaves the model
// ready to render.
func (m RootModel) sampleTick(now time.Time) RootModel {
	sample, stale := m.readSample(now)

	// Counters feed the rate computer on every tick, failed reading or not,
	// so the next diff is never taken against stale values.
	elapsed := time.Duration(0)
	if !m.prevTick.IsZero() {
		elapsed = now.Sub(m.prevTick)
	}
	m.netRate = m.rate.Compute(sample.NetBytesSent, sample.NetBytesRecv, elapsed)

	m.history.Push(clampPercent(sample.CPUPercent))
	m.procs.SetProcesses(sample.Processes)

	m.last = sample
	m.stale = stale
	m.haveSample = true
	m.prevTick = now
	return m
}

// readSample pulls every reading for this tick. A failed reading is
// non-fatal: the previous value is kept, the failure is logged, and the next
// tick simply tries again. The returned list names the stale readings.
func (m *RootModel) readSample(now time.Time) (metrics.Sample, []string) {
	sample := m.last
	sample.Timestamp = now
	var stale []string

	markStale := func(name string, err error) {
		stale = append(stale, name)
		m.log.Warn("%s reading failed, keeping previous value: %v", name, err)
	}

	if cpu, err := m.provider.CPUPercent(); err == nil {
		sample.CPUPercent = cpu
	} else {
		markStale("cpu", err)
	}

	if memory, err := m.provider.Memory(); err == nil {
		sample.MemoryUsed, sample.MemoryTotal = memory.Used, memory.Total
	} else {
		markStale("memory", err)
	}

	if diskUsage, err := m.provider.Disk(m.cfg.DiskPath); err == nil {
		sample.DiskUsed, sample.DiskTotal = diskUsage.Used, diskUsage.Total
	} else {
		markStale("disk", err)
	}

	if counters, err := m.provider.NetworkCounters(); err == nil {
		sample.NetBytesSent, sample.NetBytesRecv = counters.BytesSent, counters.BytesRecv
	} else {
		markStale("network", err)
	}

	// GPU absence is normal, not a stale reading.
	if gpu, err := m.provider.GPU(); err == nil {
		sample.GPU = gpu
		sample.GPUAvailable = true
	} else {
		sample.GPUAvailable = false
	}

	if m.cfg.MaxProcesses > 0 {
		if procs, err := m.provider.TopProcesses(m.cfg.MaxProcesses); err == nil {
			sample.Processes = procs
		} else {
			markStale("processes", err)
		}
	}

	if uptime, err := m.provider.Uptime(); err == nil {
		sample.Uptime = uptime
	}
	if loadAvg, err := m.provider.LoadAvg(); err == nil {
		sample.LoadAvg = loadAvg
	}

	return sample, stale
}

func (m RootModel) View() string {
	if !m.haveSample {
		return "Gathering first sample..."
	}

	data := frameData{
		sample:  m.last,
		rate:    m.netRate,
		history: m.history.Snapshot(),
		stale:   m.stale,
	}
	layout := frameLayout{
		barWidth:    m.cfg.BarWidth,
		graphWidth:  m.cfg.HistoryLength,
		graphHeight: m.cfg.GraphHeight,
		diskPath:    m.cfg.DiskPath,
		interval:    m.cfg.Interval,
	}

	procPanel := ""
	if m.cfg.MaxProcesses > 0 {
		procPanel = m.procs.View()
	}

	return renderFrame(data, layout, procPanel, m.footer.View())
}
