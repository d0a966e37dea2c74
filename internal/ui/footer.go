package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the single-line hotkey bar at the bottom of the frame.
type FooterModel struct {
	width int
}

func NewFooterModel() FooterModel {
	return FooterModel{}
}

func (m *FooterModel) SetSize(w int) {
	m.width = w
}

func (m FooterModel) View() string {
	left := "taskmon"
	right := "q: quit · p: pause"

	width := m.width
	if width == 0 {
		width = lipgloss.Width(left) + lipgloss.Width(right) + 4
	}

	spacer := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacer < 1 {
		spacer = 1
	}

	return FooterStyle.Render(left + strings.Repeat(" ", spacer) + right)
}
