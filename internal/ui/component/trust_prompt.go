package component

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/logging"
	"github.com/bnema/shower/internal/ui/theme"
)

const buttonSpacing = 6

// TrustPrompt presents certificate-error modals over a window. It
// implements port.TrustPrompter.
type TrustPrompt struct {
	parent *gtk.Window
}

var _ port.TrustPrompter = (*TrustPrompt)(nil)

// NewTrustPrompt creates a prompter whose modals are transient for parent.
func NewTrustPrompt(parent *gtk.Window) *TrustPrompt {
	return &TrustPrompt{parent: parent}
}

// Present shows the modal and returns immediately. answer is called once:
// true only when the user picks "Yes" on a confirm prompt.
func (tp *TrustPrompt) Present(ctx context.Context, prompt port.TrustPrompt, answer func(accepted bool)) {
	log := logging.FromContext(ctx)
	answered := false
	var dialog *gtk.Window
	finish := func(accepted bool) {
		if answered {
			return
		}
		answered = true
		log.Debug().Bool("accepted", accepted).Str("url", prompt.URL).Msg("trust prompt answered")
		answer(accepted)
		dialog.Destroy()
	}

	dialog = gtk.NewWindow()
	dialog.SetModal(true)
	dialog.SetResizable(false)
	dialog.SetDestroyWithParent(true)
	dialog.SetTitle(prompt.Heading)
	if tp.parent != nil {
		dialog.SetTransientFor(tp.parent)
	}

	box := gtk.NewBox(gtk.OrientationVertical, buttonSpacing*2)
	box.AddCSSClass(theme.ClassTrustPrompt)
	box.Append(newPromptLabel(prompt.Heading, theme.ClassTrustHeading))
	box.Append(newPromptLabel(prompt.URL, theme.ClassTrustURL))
	if prompt.Detail != "" {
		box.Append(newPromptLabel(prompt.Detail, theme.ClassTrustDetail))
	}

	buttons := gtk.NewBox(gtk.OrientationHorizontal, buttonSpacing)
	buttons.SetHAlign(gtk.AlignEnd)
	var defaultButton *gtk.Button
	for _, choice := range trustChoices(prompt.Kind) {
		accepted := choice.accepted
		btn := gtk.NewButtonWithLabel(choice.label)
		btn.ConnectClicked(func() { finish(accepted) })
		buttons.Append(btn)
		if !accepted && defaultButton == nil {
			defaultButton = btn
		}
	}
	box.Append(buttons)

	// Escape and the window manager's close button both mean "No".
	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval == gdk.KEY_Escape {
			finish(false)
			return true
		}
		return false
	})
	dialog.AddController(keys)
	dialog.ConnectCloseRequest(func() bool {
		finish(false)
		return true
	})

	dialog.SetChild(box)
	if defaultButton != nil {
		dialog.SetDefaultWidget(defaultButton)
		defaultButton.GrabFocus()
	}
	dialog.Present()
}

type trustChoice struct {
	label    string
	accepted bool
}

// trustChoices lists the buttons in display order. The refusing choice
// comes first and is the default.
func trustChoices(kind port.TrustPromptKind) []trustChoice {
	if kind == port.TrustPromptInform {
		return []trustChoice{{label: "OK", accepted: false}}
	}
	return []trustChoice{
		{label: "No", accepted: false},
		{label: "Yes", accepted: true},
	}
}

func newPromptLabel(text, class string) *gtk.Label {
	label := gtk.NewLabel(text)
	label.AddCSSClass(class)
	label.SetWrap(true)
	label.SetXAlign(0)
	label.SetMaxWidthChars(60)
	label.SetSelectable(class == theme.ClassTrustURL)
	return label
}
