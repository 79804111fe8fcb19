package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one labeled line of a Panel.
type Row struct {
	Label string
	Value string
}

// Panel is a titled, bordered block of rows.
type Panel struct {
	Title string
	Rows  []Row
}

// Add appends a row and returns the panel for chaining.
func (p *Panel) Add(label, value string) *Panel {
	p.Rows = append(p.Rows, Row{Label: label, Value: value})
	return p
}

// RenderPanel renders p with the active theme. Labels are right-aligned to
// the widest label.
func RenderPanel(p Panel) string {
	theme := GetCurrentTheme()

	width := 0
	for _, r := range p.Rows {
		width = max(width, lipgloss.Width(r.Label))
	}
	label := lipgloss.NewStyle().Foreground(theme.Label).Width(width).Align(lipgloss.Right)
	value := lipgloss.NewStyle().Foreground(theme.Value)

	lines := make([]string, 0, len(p.Rows)+1)
	if p.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(theme.Name != "none").Foreground(theme.Border).Render(p.Title))
	}
	for _, r := range p.Rows {
		lines = append(lines, label.Render(r.Label)+"  "+value.Render(r.Value))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
