package webkit

import (
	"context"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/logging"
)

// SettingsManager applies config to webkit.Settings.
type SettingsManager struct {
	cfg *config.Config
	mu  sync.RWMutex
}

// NewSettingsManager creates a new SettingsManager with the given config.
func NewSettingsManager(ctx context.Context, cfg *config.Config) *SettingsManager {
	logging.FromContext(ctx).Debug().Msg("creating settings manager")
	return &SettingsManager{cfg: cfg}
}

// UpdateFromConfig swaps the config used for views created afterwards.
func (sm *SettingsManager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	sm.mu.Lock()
	sm.cfg = cfg
	sm.mu.Unlock()
	logging.FromContext(ctx).Debug().Msg("settings config updated")
}

// ApplyToWebView applies the current config to the view's settings object.
func (sm *SettingsManager) ApplyToWebView(ctx context.Context, wv *webkit.WebView) {
	if sm == nil || wv == nil {
		return
	}
	settings := wv.Settings()
	if settings == nil {
		logging.FromContext(ctx).Error().Msg("webview has no settings object")
		return
	}

	sm.mu.RLock()
	cfg := sm.cfg
	sm.mu.RUnlock()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	settings.SetEnableJavascript(true)
	settings.SetEnableWebgl(true)
	settings.SetEnableSmoothScrolling(true)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	// window.open without a click still reaches the popup gate; this only
	// stops WebKit from refusing it before we get to decide.
	settings.SetJavascriptCanOpenWindowsAutomatically(cfg.Popups.Enabled)

	logging.FromContext(ctx).Debug().
		Bool("popups", cfg.Popups.Enabled).
		Msg("settings applied")
}
