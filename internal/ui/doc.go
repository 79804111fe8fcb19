// Package ui provides color themes and the lipgloss-rendered statistics
// panel. It is shared by the cli and calibration packages so that business
// logic never formats escape codes itself.
package ui
