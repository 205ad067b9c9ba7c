package styles

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	actionColumnWidth = 16
	keysColumnWidth   = 32
)

// NewStyledTable creates a themed, unfocused table for static output.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Nothing is selectable in printed output.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.Foreground(theme.Text)
	t.SetStyles(s)
	return t
}

// KeybindingColumns returns the columns of the keys table.
func KeybindingColumns() []table.Column {
	return []table.Column{
		{Title: "Action", Width: actionColumnWidth},
		{Title: "Keys", Width: keysColumnWidth},
	}
}

// KeybindingRows converts the keybindings config section into rows, sorted
// by action. Unbound actions show a dash.
func KeybindingRows(bindings map[string][]string) []table.Row {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	rows := make([]table.Row, 0, len(actions))
	for _, action := range actions {
		keys := strings.Join(bindings[action], ", ")
		if keys == "" {
			keys = "-"
		}
		rows = append(rows, table.Row{action, keys})
	}
	return rows
}

// RenderKeybindings renders the keys table.
func RenderKeybindings(theme *Theme, bindings map[string][]string) string {
	return NewStyledTable(theme, KeybindingColumns(), KeybindingRows(bindings)).View()
}
