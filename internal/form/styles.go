package form

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	primary     = lipgloss.Color("#2196F3")
	muted       = lipgloss.Color("#7a8699")
	destructive = lipgloss.Color("#e53935")
)

// Styles holds the lipgloss styles used by the form.
type Styles struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Pad       lipgloss.Style
	PadActive lipgloss.Style
}

// DefaultStyles returns the form's default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Section:   lipgloss.NewStyle().Bold(true).Underline(true),
		Label:     lipgloss.NewStyle().Bold(true),
		Focused:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Error:     lipgloss.NewStyle().Foreground(destructive),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Pad:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted),
		PadActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent),
	}
}
