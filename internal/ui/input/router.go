package input

import (
	"context"

	"github.com/bnema/shower/internal/domain/command"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/logging"
)

// Text placed in the command entry by the prompt actions.
const (
	SearchPrefill = command.SearchPrefix + " "
	FindPrefill   = command.FindPrefix
)

// Navigator is the part of the navigation controller that actions drive.
type Navigator interface {
	SubmitText(ctx context.Context, text string) (command.Intent, error)
	CurrentDisplayedURL() string
	ToggleSourceView(ctx context.Context) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	Reload(ctx context.Context, bypassCache bool) error
	Stop(ctx context.Context) error
}

// Chrome is the window side of the actions.
type Chrome interface {
	// ShowEntry opens the command entry on text, optionally selected.
	ShowEntry(text string, selectAll bool)
	EntryVisible() bool
	// DismissEntry hides the entry without submitting it.
	DismissEntry()
	// ShowAddress hides the entry and returns focus to the page.
	ShowAddress()
	StopEnabled() bool
	Close()
}

// EscapeEffect is what Escape does in a given window state.
type EscapeEffect int

const (
	// EscapePass lets the key through to the page.
	EscapePass EscapeEffect = iota
	EscapeStop
	EscapeDismiss
)

// DecideEscape stops an active load first, then dismisses a visible entry.
func DecideEscape(state *entity.WindowViewState, stopEnabled, entryVisible bool) EscapeEffect {
	switch {
	case state.IsLoading || stopEnabled:
		return EscapeStop
	case entryVisible:
		return EscapeDismiss
	default:
		return EscapePass
	}
}

// Router turns actions and submitted entry text into calls on a window's
// navigator and chrome.
type Router struct {
	nav    Navigator
	chrome Chrome
	state  *entity.WindowViewState
}

// NewRouter binds the router to one window.
func NewRouter(nav Navigator, chrome Chrome, state *entity.WindowViewState) *Router {
	return &Router{nav: nav, chrome: chrome, state: state}
}

// Handle is an ActionHandler. It returns false for actions it does not know
// and for an Escape with nothing to do.
func (r *Router) Handle(ctx context.Context, action Action) bool {
	var err error
	switch action {
	case ActionGoBack:
		err = r.nav.GoBack(ctx)
	case ActionGoForward:
		err = r.nav.GoForward(ctx)
	case ActionReload:
		err = r.nav.Reload(ctx, false)
	case ActionHardReload:
		err = r.nav.Reload(ctx, true)
	case ActionStop:
		return r.escape(ctx)
	case ActionCloseWindow:
		r.chrome.Close()
	case ActionFocusAddress:
		r.chrome.ShowEntry(r.nav.CurrentDisplayedURL(), true)
	case ActionSearchPrompt:
		r.chrome.ShowEntry(SearchPrefill, false)
	case ActionFindPrompt:
		r.chrome.ShowEntry(FindPrefill, false)
	case ActionToggleSource:
		err = r.nav.ToggleSourceView(ctx)
	default:
		return false
	}
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("action", string(action)).Msg("action failed")
	}
	return true
}

func (r *Router) escape(ctx context.Context) bool {
	switch DecideEscape(r.state, r.chrome.StopEnabled(), r.chrome.EntryVisible()) {
	case EscapeStop:
		if err := r.nav.Stop(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("stop failed")
		}
		return true
	case EscapeDismiss:
		r.chrome.DismissEntry()
		return true
	default:
		return false
	}
}

// Submit runs the command entry text. A find keeps the entry open so Enter
// searches again; anything else returns to the address label.
func (r *Router) Submit(ctx context.Context, text string) command.Intent {
	intent, err := r.nav.SubmitText(ctx, text)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("kind", intent.Kind.String()).Msg("command failed")
	}
	if intent.Kind == command.KindFindInPage {
		return intent
	}
	r.chrome.ShowAddress()
	return intent
}
