package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/shower/internal/application/port/mocks"
	"github.com/bnema/shower/internal/application/usecase"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func denyHost(host string) usecase.NavigationPredicate {
	return func(_ context.Context, req entity.NavigationRequest) bool {
		return req.URL != "https://"+host+"/"
	}
}

func TestPopupGate_LatentAllowedIsShownOnce(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	gate := usecase.NewPopupPolicy().Gate(state, presenter)

	presenter.EXPECT().Show(mock.Anything).Once()

	got := gate.Decide(ctx, entity.NavigationRequest{URL: "https://a.example/", IsMainFrame: true})
	assert.Equal(t, entity.PolicyAllow, got)
	assert.False(t, state.IsLatent)

	got = gate.Decide(ctx, entity.NavigationRequest{URL: "https://b.example/", IsMainFrame: true})
	assert.Equal(t, entity.PolicyAllow, got)
}

func TestPopupGate_LatentDeniedIsDiscardedNeverShown(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	policy := usecase.NewPopupPolicy(usecase.WithNavigationPredicate(denyHost("ads.example")))
	gate := policy.Gate(state, presenter)

	presenter.EXPECT().Discard(mock.Anything).Once()

	got := gate.Decide(ctx, entity.NavigationRequest{URL: "https://ads.example/"})
	assert.Equal(t, entity.PolicyDeny, got)
	assert.True(t, state.IsLatent)

	// A discarded window rejects everything without touching the presenter again.
	got = gate.Decide(ctx, entity.NavigationRequest{URL: "https://fine.example/"})
	assert.Equal(t, entity.PolicyDeny, got)
	presenter.AssertNotCalled(t, "Show", mock.Anything)
}

func TestPopupGate_ShowPredicateIndependentOfNavigation(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	never := func(context.Context, entity.NavigationRequest) bool { return false }
	policy := usecase.NewPopupPolicy(usecase.WithShowPredicate(never))

	assert.True(t, policy.NavigationAllowed(ctx, entity.NavigationRequest{URL: "https://a.example/"}))

	presenter.EXPECT().Discard(mock.Anything).Once()
	got := policy.Gate(state, presenter).Decide(ctx, entity.NavigationRequest{URL: "https://a.example/"})
	assert.Equal(t, entity.PolicyDeny, got)
}

func TestPopupGate_VisibleWindowOnlyChecksNavigation(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(false)
	presenter := mocks.NewMockWindowPresenter(t)
	never := func(context.Context, entity.NavigationRequest) bool { return false }
	policy := usecase.NewPopupPolicy(
		usecase.WithNavigationPredicate(denyHost("blocked.example")),
		usecase.WithShowPredicate(never),
	)
	gate := policy.Gate(state, presenter)

	assert.Equal(t, entity.PolicyAllow, gate.Decide(ctx, entity.NavigationRequest{URL: "https://ok.example/"}))
	assert.Equal(t, entity.PolicyDeny, gate.Decide(ctx, entity.NavigationRequest{URL: "https://blocked.example/"}))
	assert.Equal(t, entity.PolicyAllow, gate.Decide(ctx, entity.NavigationRequest{URL: "https://ok.example/"}))
}

func TestPopupGate_SettleRevealsUndecidedPopup(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	gate := usecase.NewPopupPolicy().Gate(state, presenter)

	presenter.EXPECT().Show(mock.Anything).Once()

	gate.Settle(ctx, entity.NavigationRequest{URL: "about:blank", NewWindow: true})
	assert.False(t, state.IsLatent)

	// Already revealed: neither Settle nor a later navigation shows it again.
	gate.Settle(ctx, entity.NavigationRequest{URL: "about:blank", NewWindow: true})
	assert.Equal(t, entity.PolicyAllow, gate.Decide(ctx, entity.NavigationRequest{URL: "https://a.example/"}))
}

func TestPopupGate_SettleDiscardsRefusedPopup(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	never := func(context.Context, entity.NavigationRequest) bool { return false }
	gate := usecase.NewPopupPolicy(usecase.WithShowPredicate(never)).Gate(state, presenter)

	presenter.EXPECT().Discard(mock.Anything).Once()

	gate.Settle(ctx, entity.NavigationRequest{URL: "about:blank", NewWindow: true})
	gate.Settle(ctx, entity.NavigationRequest{URL: "about:blank", NewWindow: true})
	assert.True(t, state.IsLatent)
	presenter.AssertNotCalled(t, "Show", mock.Anything)
}

func TestPopupGate_SettleAfterDecideIsNoop(t *testing.T) {
	ctx := context.Background()
	state := entity.NewWindowViewState(true)
	presenter := mocks.NewMockWindowPresenter(t)
	gate := usecase.NewPopupPolicy().Gate(state, presenter)

	presenter.EXPECT().Show(mock.Anything).Once()

	gate.Decide(ctx, entity.NavigationRequest{URL: "https://a.example/", IsMainFrame: true})
	gate.Settle(ctx, entity.NavigationRequest{URL: "https://a.example/", NewWindow: true})
	presenter.AssertNotCalled(t, "Discard", mock.Anything)
}

func TestOpensInNewWindow(t *testing.T) {
	tests := []struct {
		name string
		req  entity.NavigationRequest
		want bool
	}{
		{name: "middle click", req: entity.NavigationRequest{URL: "https://a.example/", MouseButton: entity.MiddleButton}, want: true},
		{name: "left click", req: entity.NavigationRequest{URL: "https://a.example/", MouseButton: 1}, want: false},
		{name: "javascript", req: entity.NavigationRequest{URL: "javascript:void(0)", MouseButton: entity.MiddleButton}, want: false},
		{name: "empty", req: entity.NavigationRequest{MouseButton: entity.MiddleButton}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.OpensInNewWindow(tt.req))
		})
	}
}

func TestDenyCrossSiteWithoutGesture(t *testing.T) {
	ctx := context.Background()

	assert.True(t, usecase.DenyCrossSiteWithoutGesture(ctx, entity.NavigationRequest{
		SourceURL: "https://news.example.com/", URL: "https://cdn.example.com/x",
	}))
	assert.False(t, usecase.DenyCrossSiteWithoutGesture(ctx, entity.NavigationRequest{
		SourceURL: "https://news.example.com/", URL: "https://tracker.test/",
	}))
	assert.True(t, usecase.DenyCrossSiteWithoutGesture(ctx, entity.NavigationRequest{
		SourceURL: "https://news.example.com/", URL: "https://tracker.test/", IsUserGesture: true,
	}))
	assert.True(t, usecase.DenyCrossSiteWithoutGesture(ctx, entity.NavigationRequest{URL: "https://x.test/"}))
}
