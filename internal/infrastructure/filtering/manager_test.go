package filtering_test

import (
	"context"
	"testing"

	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/infrastructure/filtering"
	"github.com/bnema/shower/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json"})
	return logging.WithContext(context.Background(), logger)
}

type blockAll struct{}

func (blockAll) ShouldBlock(context.Context, string) bool { return true }

func TestDenyList_Match(t *testing.T) {
	list, err := filtering.NewDenyList([]string{"ads.example", "*.tracker.test/pixel/*", "  "})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())

	tests := []struct {
		url     string
		want    bool
		pattern string
	}{
		{url: "https://ads.example/", want: true, pattern: "ads.example"},
		{url: "https://ADS.example/banner?x=1", want: true, pattern: "ads.example"},
		{url: "https://cdn.tracker.test/pixel/1.gif", want: true, pattern: "*.tracker.test/pixel/*"},
		{url: "https://cdn.tracker.test/img/1.gif", want: false},
		{url: "https://news.example/", want: false},
		{url: "about:blank", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			pattern, ok := list.Match(tt.url)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestDenyList_InvalidPattern(t *testing.T) {
	_, err := filtering.NewDenyList([]string{"[unterminated"})
	require.Error(t, err)
}

func TestManager_AllowNavigation(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{
		Rules: filtering.Rules{NavigationDeny: []string{"blocked.example"}, PopupsEnabled: true},
	})
	require.NoError(t, err)

	assert.False(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://blocked.example/", IsMainFrame: true}))
	assert.True(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://blocked.example/", IsMainFrame: false}))
	assert.True(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://fine.example/", IsMainFrame: true}))
	assert.Equal(t, filtering.StateActive, mgr.Status().State)
}

func TestManager_ContentBlockerConsulted(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{
		Rules:   filtering.Rules{PopupsEnabled: true},
		Blocker: blockAll{},
	})
	require.NoError(t, err)

	assert.False(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://fine.example/", IsMainFrame: true}))
}

func TestManager_AllowPopup(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{
		Rules: filtering.Rules{
			PopupDeny:                    []string{"popunder.example"},
			PopupsEnabled:                true,
			BlockCrossSiteWithoutGesture: true,
		},
	})
	require.NoError(t, err)

	assert.False(t, mgr.AllowPopup(ctx, entity.NavigationRequest{URL: "https://popunder.example/", IsUserGesture: true}))
	assert.False(t, mgr.AllowPopup(ctx, entity.NavigationRequest{
		URL: "https://other.test/", SourceURL: "https://news.example/",
	}))
	assert.True(t, mgr.AllowPopup(ctx, entity.NavigationRequest{
		URL: "https://other.test/", SourceURL: "https://news.example/", IsUserGesture: true,
	}))
	assert.True(t, mgr.AllowPopup(ctx, entity.NavigationRequest{
		URL: "https://login.news.example/", SourceURL: "https://news.example/",
	}))
}

func TestManager_PopupsDisabled(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{Rules: filtering.Rules{PopupsEnabled: false}})
	require.NoError(t, err)

	assert.False(t, mgr.PopupsEnabled())
	assert.False(t, mgr.AllowPopup(ctx, entity.NavigationRequest{URL: "https://a.example/", IsUserGesture: true}))
}

func TestManager_ApplyKeepsPreviousRulesOnError(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{
		Rules: filtering.Rules{NavigationDeny: []string{"blocked.example"}, PopupsEnabled: true},
	})
	require.NoError(t, err)

	var statuses []filtering.FilterStatus
	mgr.SetStatusCallback(func(s filtering.FilterStatus) { statuses = append(statuses, s) })

	require.Error(t, mgr.Apply(filtering.Rules{NavigationDeny: []string{"[bad"}}))
	require.Len(t, statuses, 1)
	assert.Equal(t, filtering.StateError, statuses[0].State)
	assert.False(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://blocked.example/", IsMainFrame: true}))

	require.NoError(t, mgr.Apply(filtering.Rules{PopupsEnabled: true}))
	assert.Equal(t, filtering.StateDisabled, mgr.Status().State)
	assert.True(t, mgr.AllowNavigation(ctx, entity.NavigationRequest{URL: "https://blocked.example/", IsMainFrame: true}))
}

func TestManager_PolicyUsesPredicates(t *testing.T) {
	ctx := testContext()
	mgr, err := filtering.NewManager(filtering.ManagerConfig{
		Rules: filtering.Rules{NavigationDeny: []string{"blocked.example"}, PopupsEnabled: true},
	})
	require.NoError(t, err)

	policy := mgr.Policy()
	assert.False(t, policy.NavigationAllowed(ctx, entity.NavigationRequest{URL: "https://blocked.example/", IsMainFrame: true}))
	assert.True(t, policy.ShowPopup(ctx, entity.NavigationRequest{URL: "https://fine.example/"}))
}

func TestRulesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Navigation.DenyPatterns = []string{"blocked.example"}
	cfg.Popups.DenyPatterns = []string{"popunder.example"}
	cfg.Popups.Enabled = true
	cfg.Popups.BlockCrossSiteWithoutGesture = false

	rules := filtering.RulesFromConfig(cfg)
	assert.Equal(t, filtering.Rules{
		NavigationDeny: []string{"blocked.example"},
		PopupDeny:      []string{"popunder.example"},
		PopupsEnabled:  true,
	}, rules)

	mgr, err := filtering.NewManager(filtering.ManagerConfig{Rules: rules})
	require.NoError(t, err)
	assert.Equal(t, 2, mgr.Status().Rules)
}
