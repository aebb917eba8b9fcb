package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tugasku/internal/domain"
)

// Colors shared by both themes.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the TUI.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Greeting  lipgloss.Style
	Badge     lipgloss.Style
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	TaskTitle lipgloss.Style
	TaskMeta  lipgloss.Style
	Overdue   lipgloss.Style
	DueToday  lipgloss.Style
	Upcoming  lipgloss.Style
	Completed lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Splash    lipgloss.Style
}

// StylesFor returns the styles for the given theme.
func StylesFor(theme domain.Theme) Styles {
	text := lipgloss.Color("#111827")
	if theme == domain.ThemeDark {
		text = lipgloss.Color("#F9FAFB")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginBottom(1),
		Greeting: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Badge: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		TaskTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		TaskMeta: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Overdue: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		DueToday: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Upcoming: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Completed: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true),
		Label: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Splash: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(2, 4),
	}
}

// UrgencyStyle maps an urgency to its display style.
func (s Styles) UrgencyStyle(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.UrgencyOverdue:
		return s.Overdue
	case domain.UrgencyDueToday:
		return s.DueToday
	case domain.UrgencyCompleted:
		return s.Completed
	default:
		return s.Upcoming
	}
}
