package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for plain-text output. Each field holds an
// ANSI escape sequence.
type Theme struct {
	Name    string
	Primary string
	Muted   string
	Success string
	Warning string
	Error   string
	Bold    string
	Reset   string

	// Panel colors used by RenderPanel.
	Border lipgloss.TerminalColor
	Label  lipgloss.TerminalColor
	Value  lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Primary: "\033[38;5;39m",  // bright blue
		Muted:   "\033[38;5;245m", // grey
		Success: "\033[38;5;82m",  // bright green
		Warning: "\033[38;5;220m", // yellow
		Error:   "\033[38;5;196m", // red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
		Border:  lipgloss.Color("#00AFFF"),
		Label:   lipgloss.Color("#8A8A8A"),
		Value:   lipgloss.Color("#E0E0E0"),
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Primary: "\033[38;5;27m",
		Muted:   "\033[38;5;240m",
		Success: "\033[38;5;28m",
		Warning: "\033[38;5;130m",
		Error:   "\033[38;5;124m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
		Border:  lipgloss.Color("#005FFF"),
		Label:   lipgloss.Color("#585858"),
		Value:   lipgloss.Color("#1C1C1C"),
	}

	// NoColorTheme disables all color output (NO_COLOR or --no-color).
	NoColorTheme = Theme{
		Name:   "none",
		Border: lipgloss.NoColor{},
		Label:  lipgloss.NoColor{},
		Value:  lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme; tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name ("dark", "light", "none"). Unknown
// names select the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme selects the theme from the --no-color flag and the NO_COLOR
// environment variable (https://no-color.org/); either disables colors.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

func paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + GetCurrentTheme().Reset
}

// Primary wraps s in the theme's primary color.
func Primary(s string) string { return paint(GetCurrentTheme().Primary, s) }

// Muted wraps s in the theme's secondary color.
func Muted(s string) string { return paint(GetCurrentTheme().Muted, s) }

// Success wraps s in the theme's success color.
func Success(s string) string { return paint(GetCurrentTheme().Success, s) }

// Warning wraps s in the theme's warning color.
func Warning(s string) string { return paint(GetCurrentTheme().Warning, s) }

// Error wraps s in the theme's error color.
func Error(s string) string { return paint(GetCurrentTheme().Error, s) }

// Bold wraps s in the bold attribute.
func Bold(s string) string { return paint(GetCurrentTheme().Bold, s) }
