package port

import "context"

// ChromeView is the set of window widgets ChromeStateSync renders into.
// Implemented by the Shell.
type ChromeView interface {
	// SetAddressMarkup replaces the address label content. The markup is
	// already escaped.
	SetAddressMarkup(markup string)
	// SetProgress shows the progress indicator at percent (0..100).
	// complete selects the finished style.
	SetProgress(percent int, complete bool)
	// HideProgress hides the progress indicator.
	HideProgress()
	// SetStopEnabled toggles the stop action.
	SetStopEnabled(enabled bool)
	// SetWindowTitle sets the toplevel title.
	SetWindowTitle(title string)
}

// WindowPresenter controls the visibility of a window. PopupPolicy uses it
// to realize or discard latent popup windows.
type WindowPresenter interface {
	Show(ctx context.Context)
	// Discard tears the window down without it ever becoming visible.
	Discard(ctx context.Context)
}
