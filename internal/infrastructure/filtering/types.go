package filtering

import "github.com/bnema/shower/internal/infrastructure/config"

// FilterState represents the current state of the filtering system.
type FilterState string

const (
	// StateUninitialized means no configuration has been applied yet.
	StateUninitialized FilterState = "uninitialized"
	// StateActive means at least one deny rule is in effect.
	StateActive FilterState = "active"
	// StateDisabled means nothing is filtered.
	StateDisabled FilterState = "disabled"
	// StateError means the last Apply failed; the previous rules stay in effect.
	StateError FilterState = "error"
)

// FilterStatus represents the current status of the filtering system.
type FilterStatus struct {
	State   FilterState
	Message string
	// Rules is the number of compiled deny patterns.
	Rules int
}

// Rules holds the policy inputs, usually straight from the config file.
type Rules struct {
	NavigationDeny               []string
	PopupDeny                    []string
	PopupsEnabled                bool
	BlockCrossSiteWithoutGesture bool
}

// RulesFromConfig collects the policy inputs from cfg.
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		NavigationDeny:               cfg.Navigation.DenyPatterns,
		PopupDeny:                    cfg.Popups.DenyPatterns,
		PopupsEnabled:                cfg.Popups.Enabled,
		BlockCrossSiteWithoutGesture: cfg.Popups.BlockCrossSiteWithoutGesture,
	}
}
