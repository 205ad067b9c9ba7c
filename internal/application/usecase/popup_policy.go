package usecase

import (
	"context"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/domain/url"
	"github.com/bnema/shower/internal/logging"
)

// NavigationPredicate answers "may this navigation proceed?".
type NavigationPredicate func(ctx context.Context, req entity.NavigationRequest) bool

// ShowPredicate answers "may this popup window become visible?".
type ShowPredicate func(ctx context.Context, req entity.NavigationRequest) bool

// PopupPolicy holds the two independent predicates that govern navigations
// and popup visibility. With no predicates it allows every navigation and
// shows every popup.
type PopupPolicy struct {
	navigation []NavigationPredicate
	show       []ShowPredicate
}

// PopupPolicyOption configures a PopupPolicy.
type PopupPolicyOption func(*PopupPolicy)

// WithNavigationPredicate adds a predicate that must hold for a navigation to proceed.
func WithNavigationPredicate(p NavigationPredicate) PopupPolicyOption {
	return func(pp *PopupPolicy) {
		if p != nil {
			pp.navigation = append(pp.navigation, p)
		}
	}
}

// WithShowPredicate adds a predicate that must hold for a popup to be shown.
func WithShowPredicate(p ShowPredicate) PopupPolicyOption {
	return func(pp *PopupPolicy) {
		if p != nil {
			pp.show = append(pp.show, p)
		}
	}
}

// NewPopupPolicy creates a policy from options.
func NewPopupPolicy(opts ...PopupPolicyOption) *PopupPolicy {
	p := &PopupPolicy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NavigationAllowed reports whether every navigation predicate accepts req.
func (p *PopupPolicy) NavigationAllowed(ctx context.Context, req entity.NavigationRequest) bool {
	for _, pred := range p.navigation {
		if !pred(ctx, req) {
			return false
		}
	}
	return true
}

// ShowPopup reports whether every show predicate accepts req.
func (p *PopupPolicy) ShowPopup(ctx context.Context, req entity.NavigationRequest) bool {
	for _, pred := range p.show {
		if !pred(ctx, req) {
			return false
		}
	}
	return true
}

// PopupGate applies a PopupPolicy to one window. For a latent popup window
// the first decision also decides visibility.
type PopupGate struct {
	policy    *PopupPolicy
	state     *entity.WindowViewState
	presenter port.WindowPresenter
	discarded bool
}

// Gate binds the policy to a window's state and presenter.
func (p *PopupPolicy) Gate(state *entity.WindowViewState, presenter port.WindowPresenter) *PopupGate {
	return &PopupGate{policy: p, state: state, presenter: presenter}
}

// Decide is installed as the window's RenderView navigation hook.
//
// On a latent window, an allowed and showable request reveals the window
// before the navigation proceeds. Anything else discards the window, which
// is never shown, and blocks the navigation. On a visible window only the
// navigation predicates apply.
func (g *PopupGate) Decide(ctx context.Context, req entity.NavigationRequest) entity.PolicyDecision {
	log := logging.FromContext(ctx).With().Str("url", req.URL).Logger()

	if g.discarded {
		return entity.PolicyDeny
	}

	allowed := g.policy.NavigationAllowed(ctx, req)

	if !g.state.IsLatent {
		if !allowed {
			log.Debug().Msg("navigation denied by policy")
			return entity.PolicyDeny
		}
		return entity.PolicyAllow
	}

	if allowed && g.policy.ShowPopup(ctx, req) {
		if g.state.Reveal() {
			log.Debug().Msg("revealing popup window")
			g.presenter.Show(ctx)
		}
		return entity.PolicyAllow
	}

	log.Debug().Bool("navigation_allowed", allowed).Msg("discarding latent popup window")
	g.discarded = true
	g.presenter.Discard(ctx)
	return entity.PolicyDeny
}

// Settle decides a latent window that the engine is ready to show before any
// navigation reached Decide, as when a page writes into an empty popup. It
// does nothing once the window has been revealed or discarded.
func (g *PopupGate) Settle(ctx context.Context, req entity.NavigationRequest) {
	if g.discarded || !g.state.IsLatent {
		return
	}
	g.Decide(ctx, req)
}

// OpensInNewWindow reports whether req is a middle-click on a link, which
// opens the target in a separate window instead of navigating in place.
func OpensInNewWindow(req entity.NavigationRequest) bool {
	return req.MouseButton == entity.MiddleButton &&
		req.URL != "" &&
		!url.IsJavaScript(req.URL)
}

// DenyCrossSiteWithoutGesture is a ShowPredicate that refuses popups opening a
// different site unless the user clicked or typed to open them.
func DenyCrossSiteWithoutGesture(_ context.Context, req entity.NavigationRequest) bool {
	if req.IsUserGesture || req.SourceURL == "" {
		return true
	}
	return url.SameSite(req.SourceURL, req.URL)
}
