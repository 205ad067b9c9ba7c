package webkit

import (
	"math"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/domain/url"
	"github.com/bnema/shower/internal/logging"
)

// SetCloseHandler sets the handler called when the page runs window.close().
func (wv *WebView) SetCloseHandler(fn func()) {
	wv.onClose = fn
}

// SetReadyToShowHandler sets the handler called when a view returned from
// the create hook is ready to be displayed.
func (wv *WebView) SetReadyToShowHandler(fn func()) {
	wv.onReadyToShow = fn
}

func (wv *WebView) connectSignals() {
	wv.signals = append(wv.signals,
		wv.inner.ConnectLoadChanged(wv.handleLoadChanged),
		wv.inner.ConnectLoadFailed(wv.handleLoadFailed),
		wv.inner.ConnectLoadFailedWithTLSErrors(wv.handleTLSErrors),
		wv.inner.ConnectDecidePolicy(wv.handleDecidePolicy),
		wv.inner.ConnectCreate(wv.handleCreate),
		wv.inner.ConnectReadyToShow(func() {
			defer logging.RecoverCallback(wv.ctx, "ready-to-show")
			wv.logger.Debug().Msg("ready-to-show")
			if wv.onReadyToShow != nil && !wv.destroyed.Load() {
				wv.onReadyToShow()
			}
		}),
		wv.inner.ConnectMouseTargetChanged(wv.handleMouseTarget),
		wv.inner.ConnectClose(func() {
			defer logging.RecoverCallback(wv.ctx, "close")
			if wv.onClose != nil && !wv.destroyed.Load() {
				wv.onClose()
			}
		}),
		wv.inner.Connect("notify::title", func() {
			defer logging.RecoverCallback(wv.ctx, "notify::title")
			title := wv.inner.Title()
			wv.each(func(l port.RenderViewListener) { l.OnTitleChanged(wv.ctx, title) })
		}),
		// Same-document navigations (fragment, pushState) change the URI
		// without a load cycle. During a load the commit event reports it.
		wv.inner.Connect("notify::uri", func() {
			defer logging.RecoverCallback(wv.ctx, "notify::uri")
			if wv.inner.IsLoading() {
				return
			}
			uri := wv.inner.URI()
			wv.each(func(l port.RenderViewListener) { l.OnURLChanged(wv.ctx, uri) })
		}),
		wv.inner.Connect("notify::estimated-load-progress", func() {
			defer logging.RecoverCallback(wv.ctx, "notify::estimated-load-progress")
			wv.emitProgress(wv.inner.EstimatedLoadProgress())
		}),
	)
}

func (wv *WebView) handleLoadChanged(event webkit.LoadEvent) {
	defer logging.RecoverCallback(wv.ctx, "load-changed")

	switch event {
	case webkit.LoadStarted:
		wv.progress = 0
		wv.each(func(l port.RenderViewListener) { l.OnLoadStarted(wv.ctx) })
	case webkit.LoadCommitted:
		uri := wv.inner.URI()
		tls := wv.tlsState()
		wv.each(func(l port.RenderViewListener) {
			l.OnURLChanged(wv.ctx, uri)
			l.OnTLSChanged(wv.ctx, tls)
		})
	case webkit.LoadFinished:
		wv.each(func(l port.RenderViewListener) { l.OnLoadFinished(wv.ctx) })
	}
}

func (wv *WebView) handleLoadFailed(_ webkit.LoadEvent, failingURI string, err error) bool {
	// load-changed(finished) follows, so listeners see the terminal event there.
	wv.logger.Warn().Err(err).Str("uri", failingURI).Msg("load failed")
	return false
}

func (wv *WebView) emitProgress(fraction float64) {
	percent := int(math.Round(fraction * 100))
	percent = max(0, min(100, percent))
	if percent == wv.progress || !wv.inner.IsLoading() {
		return
	}
	wv.progress = percent
	wv.each(func(l port.RenderViewListener) { l.OnLoadProgress(wv.ctx, percent) })
}

func (wv *WebView) tlsState() entity.TLSState {
	_, flags, ok := wv.inner.TLSInfo()
	if !ok {
		return entity.TLSUnknown
	}
	if flags != 0 {
		return entity.TLSInsecure
	}
	return entity.TLSSecure
}

func (wv *WebView) handleMouseTarget(hit *webkit.HitTestResult, _ uint) {
	defer logging.RecoverCallback(wv.ctx, "mouse-target-changed")

	var link string
	if hit != nil && hit.ContextIsLink() {
		link = hit.LinkURI()
	}
	if link == wv.hovered {
		return
	}
	wv.hovered = link
	wv.each(func(l port.RenderViewListener) { l.OnHoverChanged(wv.ctx, link) })
}

func (wv *WebView) handleDecidePolicy(decision webkit.PolicyDecisioner, typ webkit.PolicyDecisionType) bool {
	defer logging.RecoverCallback(wv.ctx, "decide-policy")

	if wv.navigationHook == nil {
		return false
	}
	if typ != webkit.PolicyDecisionTypeNavigationAction && typ != webkit.PolicyDecisionTypeNewWindowAction {
		return false
	}
	navDecision, ok := decision.(*webkit.NavigationPolicyDecision)
	if !ok {
		return false
	}
	action := navDecision.NavigationAction()
	if action == nil {
		return false
	}

	req := entity.NavigationRequest{
		SourceURL: wv.inner.URI(),
		// WebKit does not tell subframe navigation actions apart; frames
		// are filtered like the page that hosts them.
		IsMainFrame:   true,
		IsUserGesture: action.IsUserGesture(),
		MouseButton:   action.MouseButton(),
		NewWindow:     typ == webkit.PolicyDecisionTypeNewWindowAction,
	}
	if request := action.Request(); request != nil {
		req.URL = request.URI()
	}

	base := webkit.BasePolicyDecision(decision)
	if wv.navigationHook(wv.ctx, req) == entity.PolicyDeny {
		wv.logger.Debug().Str("uri", req.URL).Bool("new_window", req.NewWindow).Msg("navigation denied")
		base.Ignore()
		return true
	}
	base.Use()
	return true
}

func (wv *WebView) handleCreate(action *webkit.NavigationAction) gtk.Widgetter {
	defer logging.RecoverCallback(wv.ctx, "create")

	if wv.createHook == nil || action == nil {
		return nil
	}
	req := entity.PopupRequest{
		FrameName:     action.FrameName(),
		IsUserGesture: action.IsUserGesture(),
		OpenerURL:     wv.inner.URI(),
	}
	if request := action.Request(); request != nil {
		req.TargetURL = request.URI()
	}

	created := wv.createHook(wv.ctx, req)
	popup, ok := created.(*WebView)
	if !ok || popup == nil || popup.IsDestroyed() {
		wv.logger.Debug().Str("target", req.TargetURL).Msg("popup refused")
		return nil
	}
	return popup.inner
}

func (wv *WebView) handleTLSErrors(failingURI string, certificate gio.TLSCertificater, errors gio.TLSCertificateFlags) bool {
	defer logging.RecoverCallback(wv.ctx, "load-failed-with-tls-errors")

	host := url.Host(failingURI)
	if wv.certificateHook == nil || host == "" {
		return false
	}

	flags := CertificateFlags(errors)
	certErr := entity.CertificateError{
		URL:         failingURI,
		Host:        host,
		Description: flags.Describe(),
		Overridable: flags.Overridable(),
	}
	wv.logger.Warn().Str("uri", failingURI).Str("flags", flags.String()).Msg("certificate error")

	if wv.certificateHook(wv.ctx, certErr) != entity.TrustAllow || !certErr.Overridable {
		return false
	}
	if wv.destroyed.Load() {
		return true
	}

	session := wv.inner.NetworkSession()
	if session == nil {
		wv.logger.Error().Msg("no network session for certificate exception")
		return false
	}
	session.AllowTLSCertificateForHost(certificate, host)
	wv.logger.Info().Str("host", host).Msg("certificate exception added")
	wv.inner.LoadURI(failingURI)
	return true
}
