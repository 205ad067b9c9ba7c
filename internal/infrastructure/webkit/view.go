// Package webkit adapts WebKitGTK 6 (through gotk4) to port.RenderView.
package webkit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/logging"
)

// ViewID identifies a WebView for the lifetime of the process.
type ViewID uint64

type viewRegistry struct {
	views   map[ViewID]*WebView
	counter atomic.Uint64
	mu      sync.RWMutex
}

var globalRegistry = &viewRegistry{
	views: make(map[ViewID]*WebView),
}

func (r *viewRegistry) register(wv *WebView) ViewID {
	id := ViewID(r.counter.Add(1))
	r.mu.Lock()
	r.views[id] = wv
	r.mu.Unlock()
	return id
}

func (r *viewRegistry) unregister(id ViewID) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}

func (r *viewRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// LiveViews returns the number of WebViews not yet destroyed.
func LiveViews() int {
	return globalRegistry.count()
}

type subscription struct {
	key      int
	listener port.RenderViewListener
}

// WebView wraps webkit.WebView and implements port.RenderView.
// All methods must be called on the GTK main thread.
type WebView struct {
	id    ViewID
	inner *webkit.WebView
	ctx   context.Context

	destroyed atomic.Bool
	hovered   string
	progress  int

	listeners  []subscription
	nextListen int

	navigationHook  port.NavigationHook
	certificateHook port.CertificateHook
	createHook      port.CreateHook
	onClose         func()
	onReadyToShow   func()

	signals []coreglib.SignalHandle
	logger  zerolog.Logger
}

var _ port.RenderView = (*WebView)(nil)

// NewWebView creates a WebView using the default network session.
func NewWebView(ctx context.Context, settings *SettingsManager) (*WebView, error) {
	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}
	return wrap(ctx, inner, settings, "webview"), nil
}

// NewRelatedWebView creates a WebView that shares the web process and
// session of parent. WebKit requires this for views returned from the
// create signal.
func NewRelatedWebView(ctx context.Context, parent *WebView, settings *SettingsManager) (*WebView, error) {
	if parent == nil {
		return nil, fmt.Errorf("parent webview is nil")
	}
	if parent.IsDestroyed() {
		return nil, fmt.Errorf("parent webview %d: %w", parent.id, port.ErrViewDestroyed)
	}

	// related-view is construct-only, so it has to go through g_object_new.
	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"related-view": parent.inner,
	})
	inner, ok := obj.Cast().(*webkit.WebView)
	if !ok || inner == nil {
		return nil, fmt.Errorf("failed to create related webkit webview")
	}

	wv := wrap(ctx, inner, settings, "webview-popup")
	wv.logger.Debug().
		Uint64("id", uint64(wv.id)).
		Uint64("parent_id", uint64(parent.id)).
		Msg("related webview created")
	return wv, nil
}

func wrap(ctx context.Context, inner *webkit.WebView, settings *SettingsManager, component string) *WebView {
	wv := &WebView{
		inner:   inner,
		signals: make([]coreglib.SignalHandle, 0, 10),
	}
	wv.id = globalRegistry.register(wv)
	wv.ctx = logging.WithComponent(ctx, component)
	wv.logger = logging.FromContext(wv.ctx).With().Uint64("view_id", uint64(wv.id)).Logger()
	wv.ctx = logging.WithContext(wv.ctx, wv.logger)

	if settings != nil {
		settings.ApplyToWebView(wv.ctx, inner)
	}

	wv.connectSignals()
	wv.logger.Debug().Msg("webview created")
	return wv
}

// ID returns the unique identifier for this WebView.
func (wv *WebView) ID() ViewID {
	return wv.id
}

// Widget returns the view for packing into a container.
func (wv *WebView) Widget() gtk.Widgetter {
	return wv.inner
}

// GrabFocus moves keyboard focus to the page.
func (wv *WebView) GrabFocus() {
	if wv.destroyed.Load() {
		return
	}
	wv.inner.GrabFocus()
}

// Load navigates to uri.
func (wv *WebView) Load(ctx context.Context, uri string) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	if uri == "" {
		return fmt.Errorf("load: empty uri")
	}
	logging.FromContext(ctx).Debug().Uint64("view_id", uint64(wv.id)).Str("uri", uri).Msg("load")
	wv.inner.LoadURI(uri)
	return nil
}

// GoBack navigates back in history. No-op when there is no history.
func (wv *WebView) GoBack(_ context.Context) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	if wv.inner.CanGoBack() {
		wv.inner.GoBack()
	}
	return nil
}

// GoForward navigates forward in history. No-op at the end of history.
func (wv *WebView) GoForward(_ context.Context) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	if wv.inner.CanGoForward() {
		wv.inner.GoForward()
	}
	return nil
}

// Reload reloads the current page.
func (wv *WebView) Reload(_ context.Context, bypassCache bool) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	if bypassCache {
		wv.inner.ReloadBypassCache()
	} else {
		wv.inner.Reload()
	}
	return nil
}

// Stop halts the current load.
func (wv *WebView) Stop(_ context.Context) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	wv.inner.StopLoading()
	return nil
}

// FindText highlights query on the page, case-insensitively, wrapping around.
func (wv *WebView) FindText(ctx context.Context, query string) error {
	if wv.destroyed.Load() {
		return port.ErrViewDestroyed
	}
	finder := wv.inner.FindController()
	if finder == nil {
		return fmt.Errorf("find controller unavailable for webview %d", wv.id)
	}
	if query == "" {
		finder.SearchFinish()
		return nil
	}
	opts := webkit.FindOptionsCaseInsensitive | webkit.FindOptionsWrapAround
	finder.Search(query, uint32(opts), math.MaxUint32)
	logging.FromContext(ctx).Debug().Str("query", query).Msg("find in page")
	return nil
}

// URI returns the committed URI.
func (wv *WebView) URI() string {
	if wv.destroyed.Load() {
		return ""
	}
	return wv.inner.URI()
}

// Title returns the page title.
func (wv *WebView) Title() string {
	if wv.destroyed.Load() {
		return ""
	}
	return wv.inner.Title()
}

// IsLoading reports whether a load is in progress.
func (wv *WebView) IsLoading() bool {
	if wv.destroyed.Load() {
		return false
	}
	return wv.inner.IsLoading()
}

// ApplySettings re-applies the settings manager's current config.
func (wv *WebView) ApplySettings(ctx context.Context, settings *SettingsManager) {
	if wv.destroyed.Load() {
		return
	}
	settings.ApplyToWebView(ctx, wv.inner)
}

// Subscribe registers listener for view events.
func (wv *WebView) Subscribe(listener port.RenderViewListener) func() {
	key := wv.nextListen
	wv.nextListen++
	wv.listeners = append(wv.listeners, subscription{key: key, listener: listener})
	return func() {
		for i, s := range wv.listeners {
			if s.key == key {
				wv.listeners = append(wv.listeners[:i:i], wv.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetNavigationHook sets the hook consulted before each navigation.
func (wv *WebView) SetNavigationHook(hook port.NavigationHook) {
	wv.navigationHook = hook
}

// SetCertificateHook sets the hook consulted on certificate errors.
func (wv *WebView) SetCertificateHook(hook port.CertificateHook) {
	wv.certificateHook = hook
}

// SetCreateHook sets the hook consulted when the page opens a window.
func (wv *WebView) SetCreateHook(hook port.CreateHook) {
	wv.createHook = hook
}

// IsDestroyed reports whether Destroy was called.
func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed.Load()
}

// Destroy disconnects signals and drops listeners. The GTK widget itself is
// released with its parent window.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}
	wv.inner.StopLoading()
	for _, h := range wv.signals {
		wv.inner.HandlerDisconnect(h)
	}
	wv.signals = nil
	wv.listeners = nil
	wv.navigationHook = nil
	wv.certificateHook = nil
	wv.createHook = nil
	wv.onClose = nil
	wv.onReadyToShow = nil

	globalRegistry.unregister(wv.id)
	wv.logger.Debug().Msg("webview destroyed")
}

func (wv *WebView) each(fn func(port.RenderViewListener)) {
	if wv.destroyed.Load() {
		return
	}
	for _, s := range wv.listeners {
		fn(s.listener)
	}
}
