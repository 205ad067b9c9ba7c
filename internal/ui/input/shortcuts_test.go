package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shower/internal/infrastructure/config"
)

func TestNewShortcutTable_Defaults(t *testing.T) {
	table := NewShortcutTable(context.Background(), config.DefaultKeybindings())

	tests := []struct {
		key  string
		want Action
	}{
		{"alt+left", ActionGoBack},
		{"alt+right", ActionGoForward},
		{"ctrl+r", ActionReload},
		{"f5", ActionReload},
		{"ctrl+shift+r", ActionHardReload},
		{"escape", ActionStop},
		{"ctrl+w", ActionCloseWindow},
		{"ctrl+l", ActionFocusAddress},
		{"ctrl+k", ActionSearchPrompt},
		{"ctrl+slash", ActionFindPrompt},
		{"ctrl+u", ActionToggleSource},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			binding, ok := ParseKeyString(tt.key)
			require.True(t, ok)
			action, found := table.Lookup(binding)
			require.True(t, found)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestNewShortcutTable_SkipsBadEntries(t *testing.T) {
	table := NewShortcutTable(context.Background(), map[string][]string{
		"reload":      {"ctrl+r", "ctrl+nonsense"},
		"launch_nuke": {"ctrl+n"},
		"stop":        {"ctrl+r"},
	})

	assert.Len(t, table, 1)
	action, ok := table.Lookup(KeyBinding{Keyval: 'r', Modifiers: ModCtrl})
	require.True(t, ok)
	assert.Equal(t, ActionReload, action, "first action by name keeps a contested key")
}

func TestDispatcher_HandleKey(t *testing.T) {
	d := NewDispatcher(context.Background(), config.DefaultKeybindings())

	var got []Action
	d.SetOnAction(func(_ context.Context, action Action) bool {
		got = append(got, action)
		return action != ActionStop
	})

	assert.True(t, d.HandleKey('R', uint(ModCtrl|ModShift)))
	assert.False(t, d.HandleKey(KeyEscape, 0), "handler may decline a key")
	assert.False(t, d.HandleKey('x', uint(ModCtrl)), "unbound keys propagate")
	assert.Equal(t, []Action{ActionHardReload, ActionStop}, got)

	d.SetBindings(map[string][]string{"reload": {"f9"}})
	assert.False(t, d.HandleKey('r', uint(ModCtrl)))
	assert.True(t, d.HandleKey(KeyF1+8, 0))
}
