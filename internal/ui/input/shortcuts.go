package input

import (
	"context"
	"sort"

	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/logging"
)

// Action represents what happens when a shortcut is triggered.
type Action string

// Actions a window understands. The names are the keys of the
// [keybindings] config section.
const (
	ActionGoBack       Action = config.ActionGoBack
	ActionGoForward    Action = config.ActionGoForward
	ActionReload       Action = config.ActionReload
	ActionHardReload   Action = config.ActionHardReload
	ActionStop         Action = config.ActionStop
	ActionCloseWindow  Action = config.ActionCloseWindow
	ActionFocusAddress Action = config.ActionFocusAddress
	ActionSearchPrompt Action = config.ActionSearchPrompt
	ActionFindPrompt   Action = config.ActionFindPrompt
	ActionToggleSource Action = config.ActionToggleSource
)

// ShortcutTable maps KeyBinding to Action.
type ShortcutTable map[KeyBinding]Action

// NewShortcutTable builds a table from the keybindings config section.
// Unknown actions and unparsable keys are logged and skipped. When two
// actions claim the same key, the one sorting first by name wins.
func NewShortcutTable(ctx context.Context, bindings map[string][]string) ShortcutTable {
	log := logging.FromContext(ctx)
	known := make(map[string]bool)
	for _, a := range config.KeybindingActions() {
		known[a] = true
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(ShortcutTable)
	var parseErrors, unknownActions int
	for _, name := range names {
		if !known[name] {
			unknownActions++
			log.Warn().Str("action", name).Msg("unknown keybinding action")
			continue
		}
		for _, key := range bindings[name] {
			binding, ok := ParseKeyString(key)
			if !ok {
				parseErrors++
				log.Warn().Str("action", name).Str("key", key).Msg("failed to parse keybinding")
				continue
			}
			if existing, taken := table[binding]; taken {
				log.Warn().
					Str("key", key).
					Str("action", name).
					Str("kept", string(existing)).
					Msg("keybinding conflict")
				continue
			}
			table[binding] = Action(name)
			log.Trace().
				Str("key", key).
				Str("action", name).
				Uint("keyval", binding.Keyval).
				Uint("mod", uint(binding.Modifiers)).
				Msg("shortcut registered")
		}
	}

	log.Debug().
		Int("registered", len(table)).
		Int("parse_errors", parseErrors).
		Int("unknown_actions", unknownActions).
		Msg("shortcuts registered")
	return table
}

// Lookup finds the action bound to binding.
func (t ShortcutTable) Lookup(binding KeyBinding) (Action, bool) {
	binding.Modifiers &= modifierMask
	action, ok := t[binding]
	return action, ok
}
