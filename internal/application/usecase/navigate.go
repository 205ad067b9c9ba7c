package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/command"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/domain/url"
	"github.com/bnema/shower/internal/logging"
)

// DefaultStopGrace is how long Stop waits for the engine's terminal load
// event before synthesizing one.
const DefaultStopGrace = 500 * time.Millisecond

// NavigationController drives one window's RenderView from user intents and
// tracks the in-flight target versus the committed URL.
type NavigationController struct {
	view        port.RenderView
	state       *entity.WindowViewState
	interpreter command.Interpreter

	scheduler    port.Scheduler
	stopGrace    time.Duration
	cancelStop   func()
	stopFallback func(ctx context.Context)
}

// NewNavigationController creates a controller bound to view and state.
// scheduler may be nil, in which case Stop never synthesizes a terminal event.
func NewNavigationController(
	view port.RenderView,
	state *entity.WindowViewState,
	interpreter command.Interpreter,
	scheduler port.Scheduler,
) *NavigationController {
	return &NavigationController{
		view:        view,
		state:       state,
		interpreter: interpreter,
		scheduler:   scheduler,
		stopGrace:   DefaultStopGrace,
	}
}

// SetStopGrace overrides DefaultStopGrace.
func (nc *NavigationController) SetStopGrace(d time.Duration) {
	if d > 0 {
		nc.stopGrace = d
	}
}

// SetStopFallback registers what runs when Stop's grace period expires
// while the window still believes it is loading.
func (nc *NavigationController) SetStopFallback(fn func(ctx context.Context)) {
	nc.stopFallback = fn
}

// SetInterpreter swaps the interpreter, for a changed search template.
func (nc *NavigationController) SetInterpreter(interpreter command.Interpreter) {
	nc.interpreter = interpreter
}

// State returns the window state shared with ChromeStateSync.
func (nc *NavigationController) State() *entity.WindowViewState {
	return nc.state
}

// Interpret exposes the interpreter so callers can inspect an intent before submitting.
func (nc *NavigationController) Interpret(text string) command.Intent {
	return nc.interpreter.Interpret(text)
}

// SubmitText interprets text and submits the resulting intent.
func (nc *NavigationController) SubmitText(ctx context.Context, text string) (command.Intent, error) {
	intent := nc.interpreter.Interpret(text)
	return intent, nc.Submit(ctx, intent)
}

// Submit performs intent against the RenderView.
func (nc *NavigationController) Submit(ctx context.Context, intent command.Intent) error {
	log := logging.FromContext(ctx)

	switch intent.Kind {
	case command.KindFindInPage:
		log.Debug().Str("query", intent.Query).Msg("find in page")
		if err := nc.view.FindText(ctx, intent.Query); err != nil {
			return fmt.Errorf("failed to find text: %w", err)
		}
		return nil

	case command.KindSearch, command.KindNavigate:
		if intent.URL == "" {
			log.Debug().Msg("empty navigation target ignored")
			return nil
		}
		return nc.load(ctx, intent.URL)

	default:
		return fmt.Errorf("unknown intent kind %d", intent.Kind)
	}
}

func (nc *NavigationController) load(ctx context.Context, target string) error {
	ctx = logging.WithURL(ctx, target)
	logging.FromContext(ctx).Debug().Msg("navigating to URL")

	nc.cancelStopFallback()
	nc.state.BeginNavigation(target)
	if err := nc.view.Load(ctx, target); err != nil {
		nc.state.LoadFinished()
		return fmt.Errorf("failed to load URL: %w", err)
	}
	return nil
}

// CurrentDisplayedURL is the pending target while a load is in flight, and
// the engine's committed URL otherwise.
func (nc *NavigationController) CurrentDisplayedURL() string {
	if nc.state.IsLoading && nc.state.PendingURL != "" {
		return nc.state.PendingURL
	}
	if uri := nc.view.URI(); uri != "" {
		return uri
	}
	return nc.state.DisplayedURL
}

// ToggleSourceView adds or strips the view-source: marker on the committed
// URL and loads the result. No-op when nothing is loaded.
func (nc *NavigationController) ToggleSourceView(ctx context.Context) error {
	current := nc.view.URI()
	if current == "" {
		return nil
	}
	return nc.load(ctx, url.ToggleViewSource(current))
}

// GoBack navigates back in history.
func (nc *NavigationController) GoBack(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("going back")
	return nc.view.GoBack(ctx)
}

// GoForward navigates forward in history.
func (nc *NavigationController) GoForward(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("going forward")
	return nc.view.GoForward(ctx)
}

// Reload reloads the current page, optionally bypassing the cache.
func (nc *NavigationController) Reload(ctx context.Context, bypassCache bool) error {
	logging.FromContext(ctx).Debug().Bool("bypass_cache", bypassCache).Msg("reloading page")
	return nc.view.Reload(ctx, bypassCache)
}

// Stop halts the current load. If the engine has not delivered a terminal
// event once the grace period expires, the stop fallback runs so the window
// never stays stuck in the loading state.
func (nc *NavigationController) Stop(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Bool("loading", nc.state.IsLoading).Msg("stopping page load")

	if err := nc.view.Stop(ctx); err != nil {
		return err
	}

	if nc.scheduler == nil || nc.stopFallback == nil {
		return nil
	}
	nc.cancelStopFallback()
	nc.cancelStop = nc.scheduler.After(nc.stopGrace, func() {
		nc.cancelStop = nil
		if !nc.state.IsLoading {
			return
		}
		logging.FromContext(ctx).Debug().Msg("no terminal event after stop, synthesizing load-finished")
		nc.stopFallback(ctx)
	})
	return nil
}

// cancelStopFallback drops a pending stop fallback. Any later load event
// belongs to a newer navigation and must not be ended by it.
func (nc *NavigationController) cancelStopFallback() {
	if nc.cancelStop == nil {
		return
	}
	nc.cancelStop()
	nc.cancelStop = nil
}
