package ui

import (
	"fmt"
	"strings"
)

// renderHistoryGraph draws the scrolling CPU trend as a column chart with a
// percent axis on the left. Each retained sample becomes one column whose
// height is its quantized magnitude; newer samples sit to the right. With no
// history yet the grid renders empty rather than failing.
func renderHistoryGraph(samples []float64, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	// Show the most recent samples that fit, right-aligned so the graph
	// scrolls leftwards as new ticks arrive.
	window := samples
	if len(window) > width {
		window = window[len(window)-width:]
	}
	offset := width - len(window)

	heights := make([]int, len(window))
	bands := make([]Band, len(window))
	for i, v := range window {
		heights[i] = ScaleGraph(v, height)
		bands[i] = ColorBand(v)
	}

	var sb strings.Builder
	for row := height; row >= 1; row-- {
		// The axis marker is the load this row represents when filled.
		threshold := 100 * float64(row) / float64(height)
		sb.WriteString(MetricLabelStyle.Render(fmt.Sprintf("%3d%% │", int(threshold))))

		sb.WriteString(strings.Repeat(" ", offset))
		for i, v := range window {
			switch {
			case heights[i] >= row:
				sb.WriteString(BandStyle(bands[i]).Render(string(GraphRune)))
			case row == 1 && v > 0:
				// A trace of load too small for the lowest row still shows
				// as a dot so the timeline never looks dead.
				sb.WriteString(MetricLabelStyle.Render(string(GraphDotRune)))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(MetricLabelStyle.Render("─────┴" + strings.Repeat("─", width)))
	return sb.String()
}
