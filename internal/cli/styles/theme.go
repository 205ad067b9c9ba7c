// Package styles renders shower's command-line output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors and styles of CLI output.
type Theme struct {
	Surface lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Box        lipgloss.Style
}

// NewTheme returns the dark theme used by every command.
func NewTheme() *Theme {
	t := &Theme{
		Surface: lipgloss.Color("#1a1a1b"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#909090"),
		Accent:  lipgloss.Color("#4ade80"),
		Border:  lipgloss.Color("#333333"),
		Error:   lipgloss.Color("#ef4444"),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	t.Selected = lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	t.Unselected = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
