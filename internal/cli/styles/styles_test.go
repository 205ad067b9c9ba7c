package styles

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shower/internal/domain/build"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeybindingRows(t *testing.T) {
	rows := KeybindingRows(map[string][]string{
		"reload":  {"ctrl+r", "f5"},
		"go_back": {"alt+left"},
		"stop":    nil,
	})
	assert.Equal(t, []table.Row{
		{"go_back", "alt+left"},
		{"reload", "ctrl+r, f5"},
		{"stop", "-"},
	}, rows)
}

func TestRenderKeybindings(t *testing.T) {
	out := RenderKeybindings(NewTheme(), map[string][]string{"reload": {"ctrl+r"}})
	assert.Contains(t, out, "Action")
	assert.Contains(t, out, "reload")
	assert.Contains(t, out, "ctrl+r")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		accept bool
	}{
		{name: "enter keeps the default no", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, accept: false},
		{name: "y then enter", keys: []tea.KeyMsg{runes("y"), {Type: tea.KeyEnter}}, accept: true},
		{name: "tab toggles", keys: []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, accept: true},
		{name: "escape cancels", keys: []tea.KeyMsg{runes("y"), {Type: tea.KeyEsc}}, accept: false},
		{name: "n overrides y", keys: []tea.KeyMsg{runes("y"), runes("n"), {Type: tea.KeyEnter}}, accept: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = NewConfirm(NewTheme(), "Overwrite?")
			var cmd tea.Cmd
			for _, k := range tt.keys {
				model, cmd = model.Update(k)
			}
			require.NotNil(t, cmd, "the final key must quit the program")
			confirm, ok := model.(ConfirmModel)
			require.True(t, ok)
			assert.Equal(t, tt.accept, confirm.Accepted())
			assert.Empty(t, confirm.View())
		})
	}
}

func TestConfirmModel_ViewBeforeAnswer(t *testing.T) {
	m := NewConfirm(NewTheme(), "Overwrite the config file?")
	assert.False(t, m.Accepted())
	assert.Contains(t, m.View(), "Overwrite the config file?")
}

func TestRenderer(t *testing.T) {
	r := NewRenderer(NewTheme())
	out := r.RenderVersion(build.Info{Version: "v1.0.0", Commit: "abc", BuildDate: "today", GoVersion: "go1.25"})
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, build.RepoURL())

	assert.Contains(t, r.RenderPath("config", "/tmp/shower/config.toml"), "/tmp/shower/config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderSuccess("written"), "written")
}
