package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Severity colors drive the bars and graph; the rest is chrome.
const (
	ColorHealthy  = "#A3BE8C" // band: low
	ColorWarning  = "#EBCB8B" // band: medium
	ColorCritical = "#BF616A" // band: high

	ColorIceBlue   = "#81A1C1" // primary text
	ColorSteelGray = "#4C566A" // borders, muted labels
	ColorPaleBlue  = "#8FBCBB" // values
)

// Bar cells. The filled/empty pair is shared by every metric bar so the
// frame stays visually consistent.
const (
	BarFilledRune = '█'
	BarEmptyRune  = '░'
	GraphRune     = '█'
	GraphDotRune  = '·'
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSteelGray)).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorIceBlue)).
			Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSteelGray))

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPaleBlue))

	FooterStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSteelGray)).
			Foreground(lipgloss.Color("#0A001F")).
			Padding(0, 1)

	bandStyles = map[Band]lipgloss.Style{
		BandLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHealthy)),
		BandMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		BandHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCritical)),
	}

	emptyBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSteelGray))
)

// BandStyle returns the lipgloss style for a severity band.
func BandStyle(b Band) lipgloss.Style {
	return bandStyles[b]
}
