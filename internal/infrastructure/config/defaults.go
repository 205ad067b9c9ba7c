package config

// Default configuration constants
const (
	defaultAppName        = "shower"
	defaultSearchTemplate = "https://duckduckgo.com/?q=%s"

	// Window defaults
	defaultWindowWidth  = 1024 // px
	defaultWindowHeight = 768  // px

	// Loading defaults
	defaultStopGraceMs = 500

	// Logging defaults
	defaultMaxLogAgeDays = 7 // days
)

// Keybinding action names.
const (
	ActionGoBack       = "go_back"
	ActionGoForward    = "go_forward"
	ActionReload       = "reload"
	ActionHardReload   = "hard_reload"
	ActionStop         = "stop"
	ActionCloseWindow  = "close_window"
	ActionFocusAddress = "focus_address"
	ActionSearchPrompt = "search_prompt"
	ActionFindPrompt   = "find_prompt"
	ActionToggleSource = "toggle_source"
)

// KeybindingActions lists every bindable action in display order.
func KeybindingActions() []string {
	return []string{
		ActionGoBack,
		ActionGoForward,
		ActionReload,
		ActionHardReload,
		ActionStop,
		ActionCloseWindow,
		ActionFocusAddress,
		ActionSearchPrompt,
		ActionFindPrompt,
		ActionToggleSource,
	}
}

// DefaultKeybindings returns the built-in shortcuts.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		ActionGoBack:       {"alt+left"},
		ActionGoForward:    {"alt+right"},
		ActionReload:       {"ctrl+r", "f5"},
		ActionHardReload:   {"ctrl+shift+r"},
		ActionStop:         {"escape"},
		ActionCloseWindow:  {"ctrl+w"},
		ActionFocusAddress: {"ctrl+l"},
		ActionSearchPrompt: {"ctrl+k"},
		ActionFindPrompt:   {"ctrl+slash"},
		ActionToggleSource: {"ctrl+u"},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AppName:  defaultAppName,
		HomePage: "",
		Search: SearchConfig{
			Template: defaultSearchTemplate,
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Appearance: AppearanceConfig{
			HoverMarkup:           MarkupItalic,
			ProgressCompleteStyle: MarkupBold,
			TLSIndicator:          true,
		},
		Popups: PopupsConfig{
			Enabled:                      true,
			DenyPatterns:                 []string{},
			BlockCrossSiteWithoutGesture: false,
		},
		Navigation: NavigationConfig{
			DenyPatterns: []string{},
		},
		Loading: LoadingConfig{
			StopGraceMs: defaultStopGraceMs,
		},
		Keybindings: DefaultKeybindings(),
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxAge:        defaultMaxLogAgeDays,
		},
	}
}
