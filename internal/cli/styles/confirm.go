package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel is a standalone yes/no program. "No" is preselected.
type ConfirmModel struct {
	Message string
	Yes     bool
	done    bool
	keys    ConfirmKeyMap
	theme   *Theme
}

// NewConfirm creates a confirmation dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{Message: message, keys: DefaultConfirmKeyMap(), theme: theme}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Accept):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Yes = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme
	yes, no := t.Unselected, t.Selected
	if m.Yes {
		yes, no = t.Selected, t.Unselected
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render("No"), "  ", yes.Render("Yes"))
	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n to choose • enter to confirm • esc to cancel"),
	))
}

// Accepted reports whether the dialog ended on "Yes".
func (m ConfirmModel) Accepted() bool {
	return m.done && m.Yes
}
