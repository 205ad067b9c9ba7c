package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/logging"
)

// DefaultAppName is the window title when a page has no title.
const DefaultAppName = "shower"

// ChromeStyle carries the presentation settings ChromeStateSync needs.
type ChromeStyle struct {
	// AppName prefixes window titles.
	AppName string
	// HoverTag is the Pango tag wrapping a hovered link (e.g. "i").
	HoverTag string
	// CompleteTag is the Pango tag wrapping the progress text at 100%.
	CompleteTag string
	// TLSIndicator colors the https: scheme by certificate status.
	TLSIndicator bool
}

// DefaultChromeStyle returns the built-in presentation settings.
func DefaultChromeStyle() ChromeStyle {
	return ChromeStyle{
		AppName:      DefaultAppName,
		HoverTag:     "i",
		CompleteTag:  "b",
		TLSIndicator: true,
	}
}

// ChromeStateSync renders RenderView events into the window chrome.
// It implements port.RenderViewListener.
type ChromeStateSync struct {
	nav    *NavigationController
	state  *entity.WindowViewState
	chrome port.ChromeView
	style  ChromeStyle
}

var _ port.RenderViewListener = (*ChromeStateSync)(nil)

// NewChromeStateSync binds chrome to nav's window state. It also becomes
// nav's stop fallback, so a stop without a terminal event still ends the load.
func NewChromeStateSync(nav *NavigationController, chrome port.ChromeView, style ChromeStyle) *ChromeStateSync {
	if style.AppName == "" {
		style.AppName = DefaultAppName
	}
	cs := &ChromeStateSync{
		nav:    nav,
		state:  nav.State(),
		chrome: chrome,
		style:  style,
	}
	nav.SetStopFallback(cs.OnLoadFinished)
	return cs
}

// SetStyle swaps presentation settings (config reload) and re-renders.
func (cs *ChromeStateSync) SetStyle(style ChromeStyle) {
	if style.AppName == "" {
		style.AppName = DefaultAppName
	}
	cs.style = style
	cs.chrome.SetWindowTitle(FormatWindowTitle(cs.style.AppName, cs.state.Title))
	cs.render()
}

// OnLoadStarted marks the window loading and enables stop.
func (cs *ChromeStateSync) OnLoadStarted(ctx context.Context) {
	logging.FromContext(ctx).Trace().Msg("load started")
	cs.nav.cancelStopFallback()
	cs.state.LoadStarted()
	cs.chrome.SetStopEnabled(true)
	cs.chrome.SetProgress(0, false)
	cs.render()
}

// OnLoadProgress updates the progress display.
func (cs *ChromeStateSync) OnLoadProgress(_ context.Context, percent int) {
	cs.state.SetProgress(percent)
	if !cs.state.IsLoading {
		return
	}
	cs.chrome.SetProgress(cs.state.ProgressPercent, cs.state.ProgressPercent >= 100)
	cs.render()
}

// OnLoadFinished ends the load, disables stop and shows the settled URL.
func (cs *ChromeStateSync) OnLoadFinished(ctx context.Context) {
	logging.FromContext(ctx).Trace().Msg("load finished")
	cs.nav.cancelStopFallback()
	cs.state.LoadFinished()
	cs.chrome.SetStopEnabled(false)
	cs.chrome.HideProgress()
	cs.render()
}

// OnTitleChanged updates the window title.
func (cs *ChromeStateSync) OnTitleChanged(_ context.Context, title string) {
	cs.state.Title = title
	cs.chrome.SetWindowTitle(FormatWindowTitle(cs.style.AppName, title))
}

// OnURLChanged records the committed URL.
func (cs *ChromeStateSync) OnURLChanged(_ context.Context, uri string) {
	cs.state.Commit(uri)
	cs.render()
}

// OnHoverChanged shows the hovered link, or reverts to the page URL when empty.
func (cs *ChromeStateSync) OnHoverChanged(_ context.Context, uri string) {
	cs.state.SetHover(uri)
	cs.render()
}

// OnTLSChanged records the certificate status of the committed page.
func (cs *ChromeStateSync) OnTLSChanged(_ context.Context, state entity.TLSState) {
	cs.state.TLS = state
	cs.render()
}

// Refresh re-renders the address label from the current state.
func (cs *ChromeStateSync) Refresh() {
	cs.render()
}

func (cs *ChromeStateSync) render() {
	cs.chrome.SetAddressMarkup(AddressMarkup(cs.state, cs.nav.CurrentDisplayedURL(), cs.style))
}

// FormatWindowTitle returns "<app>: <title>", or app alone for an empty title.
func FormatWindowTitle(app, title string) string {
	if strings.TrimSpace(title) == "" {
		return app
	}
	return app + ": " + title
}

// AddressMarkup renders the address label. Every piece of external text is
// escaped; only the tags produced here reach the markup parser.
//
//	hovering:          <i>https://hovered.example/</i>
//	loading:           42% https://target.example/
//	loading at 100:    <b>100%</b> https://target.example/
//	idle over TLS:     <span ...>https:</span>//site.example/
//	idle otherwise:    http://site.example/
func AddressMarkup(state *entity.WindowViewState, displayed string, style ChromeStyle) string {
	if state.HoveredURL != "" {
		return wrapTag(style.HoverTag, EscapeMarkup(state.HoveredURL))
	}

	if state.IsLoading {
		progress := fmt.Sprintf("%d%%", state.ProgressPercent)
		if state.ProgressPercent >= 100 {
			progress = wrapTag(style.CompleteTag, progress)
		}
		if displayed == "" {
			return progress
		}
		return progress + " " + EscapeMarkup(displayed)
	}

	if style.TLSIndicator {
		return tlsMarkup(displayed, state.TLS)
	}
	return EscapeMarkup(displayed)
}

const (
	secureSchemeMarkup   = `<span weight="bold" foreground="green" underline="single">https:</span>`
	insecureSchemeMarkup = `<span weight="bold" foreground="red" strikethrough="true">https:</span>`
)

func tlsMarkup(uri string, tls entity.TLSState) string {
	rest, ok := strings.CutPrefix(uri, "https:")
	if !ok {
		return EscapeMarkup(uri)
	}
	switch tls {
	case entity.TLSSecure:
		return secureSchemeMarkup + EscapeMarkup(rest)
	case entity.TLSInsecure:
		return insecureSchemeMarkup + EscapeMarkup(rest)
	default:
		return EscapeMarkup(uri)
	}
}

func wrapTag(tag, inner string) string {
	if tag == "" {
		return inner
	}
	return "<" + tag + ">" + inner + "</" + tag + ">"
}

// EscapeMarkup escapes text for Pango markup.
func EscapeMarkup(text string) string {
	return html.EscapeString(text)
}
