// Package tui provides the terminal user interface for DayStock.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/daystock/daystock/internal/config"
	"github.com/daystock/daystock/internal/models"
)

// Theme contains the style definitions for the TUI.
type Theme struct {
	PrimaryColor  lipgloss.Color
	MutedColor    lipgloss.Color
	WarningColor  lipgloss.Color
	CriticalColor lipgloss.Color

	Title    lipgloss.Style
	Normal   lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Alert    lipgloss.Style

	FormLabel lipgloss.Style
	FormInput lipgloss.Style
	Focused   lipgloss.Style
}

// NewTheme creates a theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	if scheme == config.ColorSchemeMono {
		return newMonoTheme()
	}
	return newDefaultTheme()
}

func newDefaultTheme() *Theme {
	t := &Theme{
		PrimaryColor:  lipgloss.Color("#5FAFFF"),
		MutedColor:    lipgloss.Color("#626262"),
		WarningColor:  lipgloss.Color("#FFD700"),
		CriticalColor: lipgloss.Color("#FF5F5F"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.PrimaryColor)
	t.Normal = lipgloss.NewStyle()
	t.Warning = lipgloss.NewStyle().Foreground(t.WarningColor)
	t.Critical = lipgloss.NewStyle().Bold(true).Foreground(t.CriticalColor)
	t.Muted = lipgloss.NewStyle().Foreground(t.MutedColor)
	t.Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	t.Help = lipgloss.NewStyle().Foreground(t.MutedColor)
	t.Error = lipgloss.NewStyle().Foreground(t.CriticalColor)
	t.Alert = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.CriticalColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.CriticalColor).
		Padding(0, 1)

	t.FormLabel = lipgloss.NewStyle().Foreground(t.PrimaryColor)
	t.FormInput = lipgloss.NewStyle()
	t.Focused = lipgloss.NewStyle().Bold(true).Foreground(t.PrimaryColor)

	return t
}

func newMonoTheme() *Theme {
	t := &Theme{}

	t.Title = lipgloss.NewStyle().Bold(true)
	t.Normal = lipgloss.NewStyle()
	t.Warning = lipgloss.NewStyle().Italic(true)
	t.Critical = lipgloss.NewStyle().Bold(true)
	t.Muted = lipgloss.NewStyle().Faint(true)
	t.Selected = lipgloss.NewStyle().Reverse(true)
	t.Help = lipgloss.NewStyle().Faint(true)
	t.Error = lipgloss.NewStyle().Bold(true)
	t.Alert = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1)

	t.FormLabel = lipgloss.NewStyle()
	t.FormInput = lipgloss.NewStyle()
	t.Focused = lipgloss.NewStyle().Bold(true)

	return t
}

// WarningStyle maps a warning level to its row style.
func (t *Theme) WarningStyle(level models.WarningLevel) lipgloss.Style {
	switch level {
	case models.WarningCritical:
		return t.Critical
	case models.WarningYellow:
		return t.Warning
	default:
		return t.Normal
	}
}
