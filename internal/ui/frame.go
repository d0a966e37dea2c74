package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/google/taskmon/internal/metrics"
)

// frameData is the fully-derived snapshot a frame is drawn from. It is
// assembled once per tick; rendering never reaches back into live state.
type frameData struct {
	sample  metrics.Sample
	rate    metrics.NetRate
	history []float64
	// stale lists readings that failed this tick and are showing their
	// previous value.
	stale []string
}

// renderBar draws a fixed-width horizontal bar: filled cells for the load,
// empty cells for the rest, colored by the value's severity band.
func renderBar(percent float64, width int) string {
	filled := ScaleBar(percent, width)
	empty := width - filled

	bar := BandStyle(ColorBand(percent)).Render(strings.Repeat(string(BarFilledRune), filled)) +
		emptyBarStyle.Render(strings.Repeat(string(BarEmptyRune), empty))
	return bar
}

// renderPercentRow draws "<label>  <value>%  <bar>" with aligned columns.
func renderPercentRow(label string, percent float64, barWidth int) string {
	return fmt.Sprintf("%s %s  %s",
		MetricLabelStyle.Render(fmt.Sprintf("%-6s", label)),
		MetricValueStyle.Render(fmt.Sprintf("%5.1f%%", percent)),
		renderBar(percent, barWidth))
}

// renderHeader draws the title block with uptime, load average, and the
// tick cadence.
func renderHeader(data frameData, interval time.Duration) string {
	title := TitleStyle.Render("taskmon")
	sub := MetricLabelStyle.Render(fmt.Sprintf("refresh %s · %s",
		interval, data.sample.Timestamp.Format("15:04:05")))

	info := fmt.Sprintf("up %s   load %.2f %.2f %.2f",
		formatUptime(data.sample.Uptime),
		data.sample.LoadAvg[0], data.sample.LoadAvg[1], data.sample.LoadAvg[2])

	lines := []string{title + "  " + sub, MetricValueStyle.Render(info)}
	if len(data.stale) > 0 {
		lines = append(lines, MetricLabelStyle.Render("stale: "+strings.Join(data.stale, ", ")))
	}
	return strings.Join(lines, "\n")
}

// renderCPUPanel draws the CPU bar plus the scrolling history graph.
func renderCPUPanel(data frameData, barWidth, graphWidth, graphHeight int) string {
	rows := []string{
		TitleStyle.Render("CPU"),
		renderPercentRow("load", data.sample.CPUPercent, barWidth),
		"",
		renderHistoryGraph(data.history, graphWidth, graphHeight),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderMemoryPanel draws the RAM bar with used/total detail.
func renderMemoryPanel(data frameData, barWidth int) string {
	used, total := data.sample.MemoryUsed, data.sample.MemoryTotal
	rows := []string{
		TitleStyle.Render("Memory"),
		renderPercentRow("used", pct(used, total), barWidth),
		MetricLabelStyle.Render(fmt.Sprintf("       %s / %s", formatBytes(used), formatBytes(total))),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderDiskPanel draws the monitored volume's usage bar.
func renderDiskPanel(data frameData, path string, barWidth int) string {
	used, total := data.sample.DiskUsed, data.sample.DiskTotal
	rows := []string{
		TitleStyle.Render("Disk " + path),
		renderPercentRow("used", pct(used, total), barWidth),
		MetricLabelStyle.Render(fmt.Sprintf("       %s / %s", formatBytes(used), formatBytes(total))),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderNetworkPanel draws the derived throughput plus cumulative totals.
func renderNetworkPanel(data frameData) string {
	rows := []string{
		TitleStyle.Render("Network"),
		fmt.Sprintf("%s %s   %s %s",
			MetricLabelStyle.Render("▼ recv"),
			MetricValueStyle.Render(formatBytes(uint64(data.rate.RecvPerSec))+"/s"),
			MetricLabelStyle.Render("▲ sent"),
			MetricValueStyle.Render(formatBytes(uint64(data.rate.SentPerSec))+"/s")),
		MetricLabelStyle.Render(fmt.Sprintf("total  %s received · %s sent",
			formatBytes(data.sample.NetBytesRecv), formatBytes(data.sample.NetBytesSent))),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderGPUPanel draws the GPU summary when a device is present.
func renderGPUPanel(data frameData, barWidth int) string {
	if !data.sample.GPUAvailable {
		return PanelStyle.Render(TitleStyle.Render("GPU") + "\n" +
			MetricLabelStyle.Render("n/a"))
	}

	gpu := data.sample.GPU
	rows := []string{
		TitleStyle.Render("GPU " + gpu.Name),
		renderPercentRow("util", gpu.Utilization, barWidth),
		renderPercentRow("vram", pct(gpu.MemoryUsed, gpu.MemoryTotal), barWidth),
		MetricLabelStyle.Render(fmt.Sprintf("       %s / %s · %d°C",
			formatBytes(gpu.MemoryUsed), formatBytes(gpu.MemoryTotal), gpu.Temperature)),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// frameLayout fixes the visual dimensions for a whole session so the frame
// never jumps around as history fills up.
type frameLayout struct {
	barWidth    int
	graphWidth  int // history capacity, one column per retained sample
	graphHeight int
	diskPath    string
	interval    time.Duration
}

// renderFrame composes the whole display for one tick.
func renderFrame(data frameData, layout frameLayout, procPanel, footer string) string {
	sections := []string{
		renderHeader(data, layout.interval),
		renderCPUPanel(data, layout.barWidth, layout.graphWidth, layout.graphHeight),
		renderMemoryPanel(data, layout.barWidth),
		renderDiskPanel(data, layout.diskPath, layout.barWidth),
		renderNetworkPanel(data),
		renderGPUPanel(data, layout.barWidth),
	}
	if procPanel != "" {
		sections = append(sections, procPanel)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func pct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatUptime(secs uint64) string {
	d := secs / 86400
	h := (secs % 86400) / 3600
	m := (secs % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
