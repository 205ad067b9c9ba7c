// Package component provides the widgets of a shower window.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/bnema/shower/internal/ui/theme"
)

const (
	pageAddress = "address"
	pageEntry   = "entry"
)

// CommandBar is the single line at the bottom of a window. It shows either
// the address label or the command entry, never both.
type CommandBar struct {
	root    *gtk.Box
	stack   *gtk.Stack
	address *gtk.Label

	Entry    *CommandEntry
	Progress *ProgressBar
}

// NewCommandBar builds the bar with the address label visible.
func NewCommandBar() *CommandBar {
	cb := &CommandBar{
		root:     gtk.NewBox(gtk.OrientationVertical, 0),
		stack:    gtk.NewStack(),
		address:  gtk.NewLabel(""),
		Entry:    NewCommandEntry(),
		Progress: NewProgressBar(),
	}
	cb.root.AddCSSClass(theme.ClassCommandBar)

	cb.address.AddCSSClass(theme.ClassAddress)
	cb.address.SetXAlign(0)
	cb.address.SetEllipsize(pango.EllipsizeMiddle)
	cb.address.SetSingleLineMode(true)
	cb.address.SetSelectable(false)

	cb.stack.SetHHomogeneous(true)
	cb.stack.SetVHomogeneous(true)
	cb.stack.AddNamed(cb.address, pageAddress)
	cb.stack.AddNamed(cb.Entry.Widget(), pageEntry)
	cb.stack.SetVisibleChildName(pageAddress)

	cb.root.Append(cb.Progress.Widget())
	cb.root.Append(cb.stack)
	return cb
}

// Widget returns the bar for packing into the window.
func (cb *CommandBar) Widget() gtk.Widgetter {
	return cb.root
}

// SetAddressMarkup sets the address label. markup must already be escaped.
func (cb *CommandBar) SetAddressMarkup(markup string) {
	cb.address.SetMarkup(markup)
}

// AddressMarkup returns the current address label markup.
func (cb *CommandBar) AddressMarkup() string {
	return cb.address.Label()
}

// ShowEntry switches to the command entry with text, focused. selectAll
// selects the text; otherwise the cursor goes to the end.
func (cb *CommandBar) ShowEntry(text string, selectAll bool) {
	cb.stack.SetVisibleChildName(pageEntry)
	cb.Entry.Open(text, selectAll)
}

// ShowAddress switches back to the address label.
func (cb *CommandBar) ShowAddress() {
	cb.stack.SetVisibleChildName(pageAddress)
}

// EntryVisible reports whether the command entry is showing.
func (cb *CommandBar) EntryVisible() bool {
	return cb.stack.VisibleChildName() == pageEntry
}
