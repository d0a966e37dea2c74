package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/google/taskmon/internal/metrics"
)

// ProcessModel renders the top-N processes by CPU as a table. Rows are
// replaced wholesale each tick; the panel holds no state of its own beyond
// the table widget.
type ProcessModel struct {
	table table.Model
	limit int
}

func NewProcessModel(limit int) ProcessModel {
	columns := []table.Column{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 10},
		{Title: "CPU%", Width: 6},
		{Title: "MEM%", Width: 6},
		{Title: "RSS", Width: 9},
		{Title: "COMMAND", Width: 24},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color(ColorIceBlue)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorSteelGray)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle() // no row selection in a monitor

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(limit),
		table.WithStyles(styles),
	)

	return ProcessModel{table: t, limit: limit}
}

// SetProcesses replaces the table contents with this tick's readings.
func (m *ProcessModel) SetProcesses(procs []metrics.ProcessInfo) {
	rows := make([]table.Row, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", p.PID),
			p.User,
			fmt.Sprintf("%.1f", p.CPUPercent),
			fmt.Sprintf("%.1f", p.MemPercent),
			formatBytes(p.Memory),
			p.Command,
		})
	}
	m.table.SetRows(rows)
}

func (m ProcessModel) View() string {
	if m.limit == 0 {
		return ""
	}
	return PanelStyle.Render(TitleStyle.Render("Top processes") + "\n" + m.table.View())
}
