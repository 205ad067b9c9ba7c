package input

import (
	"context"
	"sync"

	"github.com/bnema/shower/internal/logging"
)

// ActionHandler is called when a shortcut fires. It returns false to let
// the key propagate, which Escape uses when there is nothing to stop.
type ActionHandler func(ctx context.Context, action Action) bool

// Dispatcher maps key presses to actions and calls the handler. The window
// feeds it from a capture-phase key controller, so shortcuts win over the
// focused widget, including the web view.
type Dispatcher struct {
	shortcuts ShortcutTable
	onAction  ActionHandler

	ctx context.Context
	mu  sync.RWMutex
}

// NewDispatcher creates a dispatcher for the configured bindings.
func NewDispatcher(ctx context.Context, bindings map[string][]string) *Dispatcher {
	return &Dispatcher{
		shortcuts: NewShortcutTable(ctx, bindings),
		ctx:       ctx,
	}
}

// SetOnAction sets the callback for when actions are triggered.
func (d *Dispatcher) SetOnAction(fn ActionHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onAction = fn
}

// SetBindings replaces the shortcut table, for config reloads.
func (d *Dispatcher) SetBindings(bindings map[string][]string) {
	table := NewShortcutTable(d.ctx, bindings)
	d.mu.Lock()
	d.shortcuts = table
	d.mu.Unlock()
}

// HandleKey dispatches a raw GDK key press. It returns true when the key
// was consumed.
func (d *Dispatcher) HandleKey(keyval, state uint) bool {
	d.mu.RLock()
	shortcuts := d.shortcuts
	handler := d.onAction
	d.mu.RUnlock()

	action, ok := shortcuts.Lookup(NewKeyBinding(keyval, state))
	if !ok || handler == nil {
		return false
	}
	logging.FromContext(d.ctx).Trace().Str("action", string(action)).Msg("shortcut")
	return handler(d.ctx, action)
}
