// Package window assembles shower windows and the GTK application that
// owns them.
package window

import (
	"context"
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/application/usecase"
	"github.com/bnema/shower/internal/domain/command"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/infrastructure/filtering"
	"github.com/bnema/shower/internal/infrastructure/webkit"
	"github.com/bnema/shower/internal/logging"
	"github.com/bnema/shower/internal/ui/component"
	"github.com/bnema/shower/internal/ui/input"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768
)

// host is what a Shell asks of the application.
type host interface {
	openWindow(ctx context.Context, text string)
	openPopup(ctx context.Context, opener *Shell, req entity.PopupRequest) port.RenderView
	windowClosed(s *Shell)
}

// shellDeps are shared by every window of the application.
type shellDeps struct {
	cfg      *config.Config
	settings *webkit.SettingsManager
	filters  *filtering.Manager
	host     host
}

// Shell is one browser window: a web view above a command bar. It wires the
// view to navigation, chrome sync, the popup gate and the trust gate, and it
// implements port.ChromeView and port.WindowPresenter for them.
type Shell struct {
	id  uuid.UUID
	ctx context.Context

	window *gtk.ApplicationWindow
	root   *gtk.Box
	view   *webkit.WebView
	bar    *component.CommandBar

	state  *entity.WindowViewState
	nav    *usecase.NavigationController
	sync   *usecase.ChromeStateSync
	gate   *usecase.PopupGate
	trust  *usecase.TrustGate
	keys   *input.Dispatcher
	router *input.Router

	// openerURL stands in for the source of a latent popup's first
	// navigation, before its own view has committed anything.
	openerURL    string
	popupTarget  string
	popupGesture bool

	// opener is set while this shell is a latent popup. popups holds this
	// shell's own latent popups.
	opener *Shell
	popups pendingPopups

	stopEnabled bool

	unsubscribe func()
	closed      bool
	deps        shellDeps
	logger      zerolog.Logger
}

var (
	_ port.ChromeView      = (*Shell)(nil)
	_ port.WindowPresenter = (*Shell)(nil)
	_ input.Chrome         = (*Shell)(nil)
)

// newShell builds a window around view. A latent shell stays hidden until
// its popup gate reveals it.
func newShell(ctx context.Context, app *gtk.Application, view *webkit.WebView, latent bool, deps shellDeps) (*Shell, error) {
	if view == nil {
		return nil, ErrWidgetCreationFailed("webview")
	}

	s := &Shell{
		id:     uuid.New(),
		view:   view,
		state:  entity.NewWindowViewState(latent),
		popups: newPendingPopups(),
		deps:   deps,
	}
	s.ctx = logging.WithWindowID(ctx, s.id.String())
	s.logger = logging.FromContext(s.ctx).With().Str("component", "shell").Logger()
	s.ctx = logging.WithContext(s.ctx, s.logger)

	s.window = gtk.NewApplicationWindow(app)
	if s.window == nil {
		return nil, ErrWindowCreationFailed
	}
	width, height := defaultWidth, defaultHeight
	if deps.cfg != nil && deps.cfg.Window.Width > 0 && deps.cfg.Window.Height > 0 {
		width, height = deps.cfg.Window.Width, deps.cfg.Window.Height
	}
	s.window.SetDefaultSize(width, height)

	s.bar = component.NewCommandBar()
	if s.bar == nil {
		s.window.Destroy()
		return nil, ErrWidgetCreationFailed("command bar")
	}

	s.root = gtk.NewBox(gtk.OrientationVertical, 0)
	content := gtk.BaseWidget(view.Widget())
	content.SetHExpand(true)
	content.SetVExpand(true)
	s.root.Append(view.Widget())
	s.root.Append(s.bar.Widget())
	s.window.SetChild(s.root)

	s.wireUseCases()
	s.wireView()
	s.wireInput()

	s.window.ConnectCloseRequest(func() bool {
		defer logging.RecoverCallback(s.ctx, "close-request")
		s.teardown()
		return false
	})

	s.logger.Debug().Bool("latent", latent).Uint64("view_id", uint64(view.ID())).Msg("window created")
	return s, nil
}

func (s *Shell) wireUseCases() {
	cfg := s.deps.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s.nav = usecase.NewNavigationController(
		s.view, s.state, command.NewInterpreter(cfg.Search.Template), webkit.TimeoutScheduler{},
	)
	s.nav.SetStopGrace(stopGrace(cfg))
	s.sync = usecase.NewChromeStateSync(s.nav, s, chromeStyle(cfg))

	policy := usecase.NewPopupPolicy()
	if s.deps.filters != nil {
		policy = s.deps.filters.Policy()
	}
	s.gate = policy.Gate(s.state, s)
	s.trust = usecase.NewTrustGate(component.NewTrustPrompt(&s.window.Window), webkit.MainContextLoop{})
	s.keys = input.NewDispatcher(s.ctx, cfg.Keybindings)
	s.router = input.NewRouter(s.nav, s, s.state)

	s.SetWindowTitle(usecase.FormatWindowTitle(chromeStyle(cfg).AppName, ""))
}

func (s *Shell) wireView() {
	s.unsubscribe = s.view.Subscribe(s.sync)
	s.view.SetNavigationHook(s.decideNavigation)
	s.view.SetCertificateHook(s.trust.OnCertificateError)
	s.view.SetCreateHook(s.createPopup)
	s.view.SetCloseHandler(s.Close)
	s.view.SetReadyToShowHandler(s.readyToShow)
}

func (s *Shell) wireInput() {
	s.keys.SetOnAction(s.router.Handle)

	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		defer logging.RecoverCallback(s.ctx, "key-pressed")
		return s.keys.HandleKey(keyval, uint(state))
	})
	s.window.AddController(keys)

	s.bar.Entry.OnActivate(s.submit)
}

// ID returns the window identifier used in logs and the registry.
func (s *Shell) ID() uuid.UUID {
	return s.id
}

// Open starts the window on text, interpreted like command entry input.
// Empty text shows the command entry, focused and empty.
func (s *Shell) Open(ctx context.Context, text string) {
	if text == "" {
		s.bar.ShowEntry("", false)
		return
	}
	if _, err := s.nav.SubmitText(ctx, text); err != nil {
		s.logger.Error().Err(err).Str("text", text).Msg("failed to open initial page")
	}
	s.sync.Refresh()
	s.view.GrabFocus()
}

// ApplyConfig pushes reloadable settings into the window's components.
func (s *Shell) ApplyConfig(cfg *config.Config) {
	if cfg == nil || s.closed {
		return
	}
	s.nav.SetInterpreter(command.NewInterpreter(cfg.Search.Template))
	s.nav.SetStopGrace(stopGrace(cfg))
	s.keys.SetBindings(cfg.Keybindings)
	s.sync.SetStyle(chromeStyle(cfg))
}

// Close asks the window to close, as if the user had clicked its close button.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.window.Close()
}

// --- port.ChromeView ---

// SetAddressMarkup implements port.ChromeView.
func (s *Shell) SetAddressMarkup(markup string) {
	s.bar.SetAddressMarkup(markup)
}

// SetProgress implements port.ChromeView.
func (s *Shell) SetProgress(percent int, complete bool) {
	s.bar.Progress.Set(percent, complete)
}

// HideProgress implements port.ChromeView.
func (s *Shell) HideProgress() {
	s.bar.Progress.Hide()
}

// SetStopEnabled implements port.ChromeView. Escape only stops while it is set.
func (s *Shell) SetStopEnabled(enabled bool) {
	s.stopEnabled = enabled
}

// SetWindowTitle implements port.ChromeView.
func (s *Shell) SetWindowTitle(title string) {
	s.window.SetTitle(title)
}

// --- port.WindowPresenter ---

// Show implements port.WindowPresenter.
func (s *Shell) Show(ctx context.Context) {
	if s.closed {
		return
	}
	logging.FromContext(ctx).Debug().Msg("presenting window")
	s.window.Present()
	if s.opener != nil {
		s.opener.popups.remove(s.id)
		s.opener = nil
	}
}

// Discard implements port.WindowPresenter. It runs from inside an engine
// callback, so the window is torn down on a later main-loop iteration.
func (s *Shell) Discard(ctx context.Context) {
	logging.FromContext(ctx).Debug().Msg("discarding window")
	webkit.RunOnMainThread(func() {
		defer logging.RecoverCallback(s.ctx, "discard")
		if s.closed {
			return
		}
		s.teardown()
		s.window.Destroy()
	})
}

// --- hooks ---

func (s *Shell) decideNavigation(ctx context.Context, req entity.NavigationRequest) entity.PolicyDecision {
	if s.state.IsLatent && req.SourceURL == "" {
		req.SourceURL = s.openerURL
	}
	if !s.state.IsLatent && usecase.OpensInNewWindow(req) {
		s.logger.Debug().Str("url", req.URL).Msg("middle click opens a new window")
		target := req.URL
		webkit.RunOnMainThread(func() {
			defer logging.RecoverCallback(ctx, "open-window")
			s.deps.host.openWindow(ctx, target)
		})
		return entity.PolicyDeny
	}
	return s.gate.Decide(ctx, req)
}

func (s *Shell) createPopup(ctx context.Context, req entity.PopupRequest) port.RenderView {
	if s.closed {
		return nil
	}
	if s.deps.filters != nil && !s.deps.filters.PopupsEnabled() {
		s.logger.Debug().Str("target", req.TargetURL).Msg("popups disabled")
		return nil
	}
	return s.deps.host.openPopup(ctx, s, req)
}

// readyToShow settles a latent popup that reached ready-to-show without a
// navigation decision, such as window.open() followed by document.write().
func (s *Shell) readyToShow() {
	if s.closed || !s.state.IsLatent {
		return
	}
	s.gate.Settle(s.ctx, readyRequest(s.view.URI(), s.popupTarget, s.openerURL, s.popupGesture))
}

func readyRequest(uri, target, opener string, gesture bool) entity.NavigationRequest {
	if uri == "" {
		uri = target
	}
	if uri == "" {
		uri = "about:blank"
	}
	return entity.NavigationRequest{
		URL:           uri,
		SourceURL:     opener,
		IsMainFrame:   true,
		IsUserGesture: gesture,
		NewWindow:     true,
	}
}

// --- input.Chrome ---

// ShowEntry implements input.Chrome.
func (s *Shell) ShowEntry(text string, selectAll bool) {
	s.bar.ShowEntry(text, selectAll)
}

// EntryVisible implements input.Chrome.
func (s *Shell) EntryVisible() bool {
	return s.bar.EntryVisible()
}

// StopEnabled implements input.Chrome.
func (s *Shell) StopEnabled() bool {
	return s.stopEnabled
}

// DismissEntry puts the displayed URL back in the entry, or clears it, and
// returns to the page.
func (s *Shell) DismissEntry() {
	if displayed := s.state.DisplayedURL; displayed != "" {
		s.bar.Entry.Open(displayed, false)
	} else {
		s.bar.Entry.Clear()
	}
	s.ShowAddress()
}

// ShowAddress implements input.Chrome.
func (s *Shell) ShowAddress() {
	s.bar.ShowAddress()
	s.sync.Refresh()
	s.view.GrabFocus()
}

func (s *Shell) submit(text string) {
	defer logging.RecoverCallback(s.ctx, "entry-activate")
	s.router.Submit(s.ctx, text)
}

// teardown releases the view and leaves the registry. Safe to call twice.
func (s *Shell) teardown() {
	if s.closed {
		return
	}
	s.closed = true
	s.popups.discardAll(s.ctx)
	if s.opener != nil {
		s.opener.popups.remove(s.id)
		s.opener = nil
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.view.Destroy()
	s.deps.host.windowClosed(s)
	s.logger.Debug().Msg("window closed")
}

func chromeStyle(cfg *config.Config) usecase.ChromeStyle {
	return usecase.ChromeStyle{
		AppName:      cfg.AppName,
		HoverTag:     cfg.Appearance.HoverMarkup.Tag(),
		CompleteTag:  cfg.Appearance.ProgressCompleteStyle.Tag(),
		TLSIndicator: cfg.Appearance.TLSIndicator,
	}
}

func stopGrace(cfg *config.Config) time.Duration {
	if cfg.Loading.StopGraceMs <= 0 {
		return usecase.DefaultStopGrace
	}
	return time.Duration(cfg.Loading.StopGraceMs) * time.Millisecond
}
