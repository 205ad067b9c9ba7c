package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/shower/internal/ui/theme"
)

// CommandEntry is the address/search/find input.
type CommandEntry struct {
	entry   *gtk.Entry
	focused bool

	onActivate func(text string)
}

// NewCommandEntry creates an empty entry.
func NewCommandEntry() *CommandEntry {
	ce := &CommandEntry{entry: gtk.NewEntry()}
	ce.entry.AddCSSClass(theme.ClassCommandEntry)
	ce.entry.SetHExpand(true)
	ce.entry.SetPlaceholderText("address, ?search or /find")

	ce.entry.ConnectActivate(func() {
		if ce.onActivate != nil {
			ce.onActivate(ce.entry.Text())
		}
	})

	focus := gtk.NewEventControllerFocus()
	focus.ConnectEnter(func() { ce.focused = true })
	focus.ConnectLeave(func() { ce.focused = false })
	ce.entry.AddController(focus)
	return ce
}

// Widget returns the entry widget.
func (ce *CommandEntry) Widget() gtk.Widgetter {
	return ce.entry
}

// OnActivate sets the handler for Enter.
func (ce *CommandEntry) OnActivate(fn func(text string)) {
	ce.onActivate = fn
}

// Open sets text and focuses the entry.
func (ce *CommandEntry) Open(text string, selectAll bool) {
	ce.entry.SetText(text)
	ce.entry.GrabFocus()
	if selectAll {
		ce.entry.SelectRegion(0, -1)
	} else {
		ce.entry.SetPosition(-1)
	}
}

// Text returns the current text.
func (ce *CommandEntry) Text() string {
	return ce.entry.Text()
}

// Clear empties the entry.
func (ce *CommandEntry) Clear() {
	ce.entry.SetText("")
}

// HasFocus reports whether keyboard focus is inside the entry.
func (ce *CommandEntry) HasFocus() bool {
	return ce.focused
}
