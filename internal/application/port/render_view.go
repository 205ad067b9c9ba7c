// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
	"errors"

	"github.com/bnema/shower/internal/domain/entity"
)

// ErrViewDestroyed is returned by RenderView operations after Destroy.
var ErrViewDestroyed = errors.New("render view is destroyed")

// RenderViewListener receives RenderView lifecycle events. All methods are
// called on the UI thread.
type RenderViewListener interface {
	OnLoadStarted(ctx context.Context)
	// OnLoadProgress reports progress in percent, 0..100.
	OnLoadProgress(ctx context.Context, percent int)
	// OnLoadFinished is the terminal event of a load, including failed or stopped loads.
	OnLoadFinished(ctx context.Context)
	OnTitleChanged(ctx context.Context, title string)
	// OnURLChanged reports the committed URL.
	OnURLChanged(ctx context.Context, uri string)
	// OnHoverChanged reports the link under the pointer, empty when none.
	OnHoverChanged(ctx context.Context, uri string)
	// OnTLSChanged reports the certificate status of the committed page.
	OnTLSChanged(ctx context.Context, state entity.TLSState)
}

// NavigationHook is consulted synchronously before the engine follows a
// navigation. Returning PolicyDeny blocks it.
type NavigationHook func(ctx context.Context, req entity.NavigationRequest) entity.PolicyDecision

// CertificateHook is consulted synchronously when a certificate fails
// validation. The engine waits for the answer.
type CertificateHook func(ctx context.Context, certErr entity.CertificateError) entity.TrustDecision

// CreateHook is consulted when the page opens a new window. It returns the
// view that will host the popup, or nil to block it.
type CreateHook func(ctx context.Context, req entity.PopupRequest) RenderView

// RenderView is the embedded web-rendering engine as the chrome sees it.
type RenderView interface {
	// --- Navigation ---

	Load(ctx context.Context, uri string) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	// Reload reloads the page; bypassCache skips the HTTP cache.
	Reload(ctx context.Context, bypassCache bool) error
	// Stop halts the current load. The engine may or may not emit a terminal event.
	Stop(ctx context.Context) error
	// FindText highlights and scrolls to the first match of query.
	FindText(ctx context.Context, query string) error

	// --- State ---

	// URI returns the committed URI, empty before the first commit.
	URI() string
	Title() string
	IsLoading() bool

	// --- Events and hooks ---

	// Subscribe registers a listener and returns a function that removes it.
	Subscribe(listener RenderViewListener) (unsubscribe func())
	SetNavigationHook(hook NavigationHook)
	SetCertificateHook(hook CertificateHook)
	SetCreateHook(hook CreateHook)

	// --- Lifecycle ---

	IsDestroyed() bool
	Destroy()
}
