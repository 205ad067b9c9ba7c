package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/google/uuid"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/infrastructure/filtering"
	"github.com/bnema/shower/internal/infrastructure/webkit"
	"github.com/bnema/shower/internal/logging"
	"github.com/bnema/shower/internal/ui/theme"
)

// AppID is the application identifier for GTK.
const AppID = "com.github.bnema.shower"

// Dependencies holds what the UI layer needs from the process.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager enables hot reload. Optional.
	ConfigManager *config.Manager
	// InitialText is opened in the first window, as if typed in the command
	// entry. Empty falls back to Config.HomePage, then to an empty entry.
	InitialText string
	DataDir     string
	CacheDir    string
}

// Validate checks that required dependencies are set.
func (d *Dependencies) Validate() error {
	if d == nil {
		return errors.New("dependencies are nil")
	}
	if d.Ctx == nil {
		return errors.New("context is required")
	}
	if d.Config == nil {
		return errors.New("config is required")
	}
	return nil
}

// App wraps the GTK Application and owns every window.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	registry *Registry
	// shells is only touched on the main thread; the registry carries the
	// cross-thread view.
	shells map[uuid.UUID]*Shell

	settings *webkit.SettingsManager
	filters  *filtering.Manager
	theme    *theme.Manager

	ctx    context.Context
	cancel context.CancelCauseFunc
}

var _ host = (*App)(nil)

// New creates an App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	filters, err := filtering.NewManager(filtering.ManagerConfig{
		Rules: filtering.RulesFromConfig(deps.Config),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(logging.WithComponent(deps.Ctx, "app"))
	app := &App{
		deps:    deps,
		shells:  make(map[uuid.UUID]*Shell),
		filters: filters,
		ctx:     ctx,
		cancel:  cancel,
	}
	app.registry = NewRegistry(app.quit)
	app.filters.SetStatusCallback(func(status filtering.FilterStatus) {
		logging.FromContext(ctx).Info().
			Str("state", string(status.State)).
			Int("rules", status.Rules).
			Msg(status.Message)
	})
	return app, nil
}

// Registry returns the window registry.
func (a *App) Registry() *Registry {
	return a.registry
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	// Every invocation is its own browser process with its own windows.
	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		defer logging.RecoverCallback(a.ctx, "activate")
		a.onActivate(a.ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		defer logging.RecoverCallback(a.ctx, "shutdown")
		a.onShutdown(a.ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.settings == nil {
		if err := webkit.InitPersistentSession(ctx, a.deps.DataDir, a.deps.CacheDir); err != nil {
			log.Warn().Err(err).Msg("falling back to the default network session")
		}
		a.settings = webkit.NewSettingsManager(ctx, a.deps.Config)

		a.theme = theme.NewManager(ctx, a.deps.Config.Appearance.CSS)
		if display := gdk.DisplayGetDefault(); display != nil {
			a.theme.ApplyToDisplay(ctx, display)
		}

		a.initConfigWatcher(ctx)
	}

	text := a.deps.InitialText
	if text == "" {
		text = a.deps.Config.HomePage
	}
	a.openWindow(ctx, text)
}

func (a *App) onShutdown(ctx context.Context) {
	logging.FromContext(ctx).Debug().Int("windows", a.registry.Len()).Msg("GTK application shutting down")
	a.registry.CloseAll()
	a.cancel(errors.New("application shutdown"))
}

func (a *App) quit() {
	logging.FromContext(a.ctx).Debug().Msg("last window closed")
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

func (a *App) shellDeps() shellDeps {
	return shellDeps{
		cfg:      a.deps.Config,
		settings: a.settings,
		filters:  a.filters,
		host:     a,
	}
}

func (a *App) track(s *Shell) {
	a.shells[s.ID()] = s
	a.registry.Add(s.ID(), s)
}

// openWindow opens a visible window on text.
func (a *App) openWindow(ctx context.Context, text string) {
	log := logging.FromContext(ctx)

	view, err := webkit.NewWebView(a.ctx, a.settings)
	if err != nil {
		log.Error().Err(err).Msg("failed to create webview")
		return
	}
	s, err := newShell(a.ctx, a.gtkApp, view, false, a.shellDeps())
	if err != nil {
		view.Destroy()
		log.Error().Err(err).Msg("failed to create window")
		return
	}
	a.track(s)
	s.window.Present()
	s.Open(s.ctx, text)
}

// openPopup creates the latent window that will host a page-opened popup.
// It returns nil, not a typed nil, when no window could be made.
func (a *App) openPopup(ctx context.Context, opener *Shell, req entity.PopupRequest) port.RenderView {
	log := logging.FromContext(ctx).With().Str("target", req.TargetURL).Logger()

	view, err := webkit.NewRelatedWebView(a.ctx, opener.view, a.settings)
	if err != nil {
		log.Error().Err(err).Msg("failed to create popup webview")
		return nil
	}
	s, err := newShell(a.ctx, a.gtkApp, view, true, a.shellDeps())
	if err != nil {
		view.Destroy()
		log.Error().Err(err).Msg("failed to create popup window")
		return nil
	}
	s.openerURL = req.OpenerURL
	s.popupTarget = req.TargetURL
	s.popupGesture = req.IsUserGesture
	s.opener = opener
	opener.popups.add(s.ID(), s)
	a.track(s)

	log.Debug().
		Str("opener", opener.ID().String()).
		Str("popup", s.ID().String()).
		Bool("user_gesture", req.IsUserGesture).
		Msg("latent popup window created")
	return view
}

func (a *App) windowClosed(s *Shell) {
	delete(a.shells, s.ID())
	a.registry.Remove(s.ID())
}

func (a *App) initConfigWatcher(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.ConfigManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	if err := a.deps.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	// Callbacks arrive on the fsnotify goroutine.
	a.deps.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		cfgCopy := newCfg
		webkit.RunOnMainThread(func() {
			defer logging.RecoverCallback(ctx, "config-change")
			a.applyConfig(ctx, cfgCopy)
		})
	})

	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)
	if cfg == nil {
		return
	}

	// Update the shared config pointer in-place so existing references see changes.
	*a.deps.Config = *cfg

	if err := a.filters.Apply(filtering.RulesFromConfig(cfg)); err != nil {
		log.Warn().Err(err).Msg("keeping previous filtering rules")
	}

	if a.settings != nil {
		a.settings.UpdateFromConfig(ctx, cfg)
	}
	if a.theme != nil {
		a.theme.SetExtraCSS(ctx, cfg.Appearance.CSS, gdk.DisplayGetDefault())
	}

	for _, s := range a.shells {
		s.view.ApplySettings(ctx, a.settings)
		s.ApplyConfig(cfg)
	}

	log.Info().Int("windows", len(a.shells)).Msg("config applied")
}

// Quit closes every window and stops the main loop. Safe to call from any
// goroutine.
func (a *App) Quit() {
	webkit.RunOnMainThread(func() {
		a.registry.CloseAll()
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
