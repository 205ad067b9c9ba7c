package filtering

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/shower/internal/application/usecase"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/bnema/shower/internal/logging"
)

// Manager holds the active deny lists and answers the navigation and popup
// predicates. Apply swaps the rules atomically, so config reloads take effect
// for the next decision in every window.
type Manager struct {
	mu         sync.RWMutex
	navigation *DenyList
	popups     *DenyList
	rules      Rules
	blocker    ContentBlocker

	status         atomic.Value // FilterStatus
	onStatusChange func(FilterStatus)
}

// ManagerConfig holds configuration for the filter manager.
type ManagerConfig struct {
	Rules Rules
	// Blocker is consulted for main-frame navigations. Nil uses NoopBlocker.
	Blocker ContentBlocker
}

// NewManager compiles cfg.Rules.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	blocker := cfg.Blocker
	if blocker == nil {
		blocker = NoopBlocker{}
	}
	m := &Manager{blocker: blocker}
	m.status.Store(FilterStatus{State: StateUninitialized})

	if err := m.Apply(cfg.Rules); err != nil {
		return nil, err
	}
	return m, nil
}

// SetStatusCallback sets a callback for status changes.
func (m *Manager) SetStatusCallback(cb func(FilterStatus)) {
	m.onStatusChange = cb
}

func (m *Manager) setStatus(status FilterStatus) {
	m.status.Store(status)
	if m.onStatusChange != nil {
		m.onStatusChange(status)
	}
}

// Status returns the current filter status.
func (m *Manager) Status() FilterStatus {
	if s, ok := m.status.Load().(FilterStatus); ok {
		return s
	}
	return FilterStatus{State: StateUninitialized}
}

// Apply compiles rules and makes them active. On error the previous rules stay.
func (m *Manager) Apply(rules Rules) error {
	navigation, err := NewDenyList(rules.NavigationDeny)
	if err != nil {
		m.setStatus(FilterStatus{State: StateError, Message: err.Error(), Rules: m.Status().Rules})
		return fmt.Errorf("navigation deny list: %w", err)
	}
	popups, err := NewDenyList(rules.PopupDeny)
	if err != nil {
		m.setStatus(FilterStatus{State: StateError, Message: err.Error(), Rules: m.Status().Rules})
		return fmt.Errorf("popup deny list: %w", err)
	}

	m.mu.Lock()
	m.navigation = navigation
	m.popups = popups
	m.rules = rules
	m.mu.Unlock()

	count := navigation.Len() + popups.Len()
	if count == 0 && rules.PopupsEnabled && !rules.BlockCrossSiteWithoutGesture {
		m.setStatus(FilterStatus{State: StateDisabled, Message: "No filtering rules"})
		return nil
	}
	m.setStatus(FilterStatus{
		State:   StateActive,
		Message: fmt.Sprintf("%d deny patterns", count),
		Rules:   count,
	})
	return nil
}

// PopupsEnabled reports whether pages may open new windows at all.
func (m *Manager) PopupsEnabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rules.PopupsEnabled
}

// AllowNavigation is a usecase.NavigationPredicate. Subframe loads are not filtered.
func (m *Manager) AllowNavigation(ctx context.Context, req entity.NavigationRequest) bool {
	if !req.IsMainFrame {
		return true
	}

	m.mu.RLock()
	navigation := m.navigation
	m.mu.RUnlock()

	log := logging.FromContext(ctx)
	if pattern, ok := navigation.Match(req.URL); ok {
		log.Debug().Str("url", req.URL).Str("pattern", pattern).Msg("navigation blocked by deny list")
		return false
	}
	if m.blocker.ShouldBlock(ctx, req.URL) {
		log.Debug().Str("url", req.URL).Msg("navigation blocked by content blocker")
		return false
	}
	return true
}

// AllowPopup is a usecase.ShowPredicate.
func (m *Manager) AllowPopup(ctx context.Context, req entity.NavigationRequest) bool {
	m.mu.RLock()
	popups := m.popups
	rules := m.rules
	m.mu.RUnlock()

	log := logging.FromContext(ctx)
	if !rules.PopupsEnabled {
		log.Debug().Str("url", req.URL).Msg("popup refused, popups disabled")
		return false
	}
	if pattern, ok := popups.Match(req.URL); ok {
		log.Debug().Str("url", req.URL).Str("pattern", pattern).Msg("popup blocked by deny list")
		return false
	}
	if rules.BlockCrossSiteWithoutGesture && !usecase.DenyCrossSiteWithoutGesture(ctx, req) {
		log.Debug().Str("url", req.URL).Str("opener", req.SourceURL).Msg("cross-site popup without user gesture refused")
		return false
	}
	return true
}

// Policy builds a PopupPolicy wired to this manager's predicates.
func (m *Manager) Policy() *usecase.PopupPolicy {
	return usecase.NewPopupPolicy(
		usecase.WithNavigationPredicate(m.AllowNavigation),
		usecase.WithShowPredicate(m.AllowPopup),
	)
}
