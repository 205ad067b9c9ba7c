package webkit

import (
	"context"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/shower/internal/application/port"
)

// wakeInterval bounds how long a nested iteration sleeps, so a cancelled
// context is noticed even when no GTK event arrives.
const wakeInterval = 100 * time.Millisecond

// MainContextLoop runs nested iterations of the default GLib main context.
type MainContextLoop struct{}

var _ port.MainLoop = MainContextLoop{}

// RunUntil dispatches events until done returns true or ctx is cancelled.
func (MainContextLoop) RunUntil(ctx context.Context, done func() bool) {
	mc := glib.MainContextDefault()
	wake := glib.TimeoutAdd(uint(wakeInterval.Milliseconds()), func() bool { return true })
	defer glib.SourceRemove(wake)

	for !done() && ctx.Err() == nil {
		mc.Iteration(true)
	}
}

// TimeoutScheduler schedules callbacks on the GLib main context.
type TimeoutScheduler struct{}

var _ port.Scheduler = TimeoutScheduler{}

// After runs fn once after d on the main thread.
func (TimeoutScheduler) After(d time.Duration, fn func()) func() {
	pending := true
	handle := glib.TimeoutAdd(uint(d.Milliseconds()), func() bool {
		pending = false
		fn()
		return false
	})
	return func() {
		if pending {
			pending = false
			glib.SourceRemove(handle)
		}
	}
}

// RunOnMainThread schedules fn on the GTK main thread. Use it from
// goroutines such as the config watcher.
func RunOnMainThread(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
