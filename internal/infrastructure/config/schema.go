package config

// Config represents the complete configuration for shower.
type Config struct {
	// AppName prefixes every window title.
	AppName string `mapstructure:"app_name" yaml:"app_name" toml:"app_name" json:"app_name"`
	// HomePage is loaded when shower starts without an argument. Empty opens the command entry.
	HomePage   string           `mapstructure:"home_page" yaml:"home_page" toml:"home_page" json:"home_page"`
	Search     SearchConfig     `mapstructure:"search" yaml:"search" toml:"search" json:"search"`
	Window     WindowConfig     `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Popups     PopupsConfig     `mapstructure:"popups" yaml:"popups" toml:"popups" json:"popups"`
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation" toml:"navigation" json:"navigation"`
	Loading    LoadingConfig    `mapstructure:"loading" yaml:"loading" toml:"loading" json:"loading"`
	// Keybindings maps an action name to one or more shortcuts such as "ctrl+shift+r".
	Keybindings map[string][]string `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings" json:"keybindings"`
	Logging     LoggingConfig       `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// SearchConfig holds the search endpoint.
type SearchConfig struct {
	// Template is the search URL; %s is replaced with the escaped query.
	Template string `mapstructure:"template" yaml:"template" toml:"template" json:"template" jsonschema:"pattern=%s"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// MarkupStyle names a Pango emphasis used in the address label.
type MarkupStyle string

const (
	MarkupItalic    MarkupStyle = "italic"
	MarkupBold      MarkupStyle = "bold"
	MarkupUnderline MarkupStyle = "underline"
	MarkupNone      MarkupStyle = "none"
)

// Tag returns the Pango tag for the style, empty for MarkupNone.
func (s MarkupStyle) Tag() string {
	switch s {
	case MarkupItalic:
		return "i"
	case MarkupBold:
		return "b"
	case MarkupUnderline:
		return "u"
	default:
		return ""
	}
}

// AppearanceConfig holds chrome presentation settings.
type AppearanceConfig struct {
	// HoverMarkup emphasizes a hovered link in the address label.
	HoverMarkup MarkupStyle `mapstructure:"hover_markup" yaml:"hover_markup" toml:"hover_markup" json:"hover_markup" jsonschema:"enum=italic,enum=bold,enum=underline,enum=none"`
	// ProgressCompleteStyle emphasizes the progress text once it reaches 100%.
	ProgressCompleteStyle MarkupStyle `mapstructure:"progress_complete_style" yaml:"progress_complete_style" toml:"progress_complete_style" json:"progress_complete_style" jsonschema:"enum=italic,enum=bold,enum=underline,enum=none"`
	// TLSIndicator colors the https: scheme by certificate status.
	TLSIndicator bool `mapstructure:"tls_indicator" yaml:"tls_indicator" toml:"tls_indicator" json:"tls_indicator"`
	// CSS is appended to the built-in chrome stylesheet.
	CSS string `mapstructure:"css" yaml:"css" toml:"css" json:"css"`
}

// PopupsConfig controls windows opened by pages.
type PopupsConfig struct {
	// Enabled allows pages to open new windows at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	// DenyPatterns are glob patterns; a popup whose URL matches one is never shown.
	DenyPatterns []string `mapstructure:"deny_patterns" yaml:"deny_patterns" toml:"deny_patterns" json:"deny_patterns"`
	// BlockCrossSiteWithoutGesture refuses popups to another site unless the user clicked.
	BlockCrossSiteWithoutGesture bool `mapstructure:"block_cross_site_without_gesture" yaml:"block_cross_site_without_gesture" toml:"block_cross_site_without_gesture" json:"block_cross_site_without_gesture"`
}

// NavigationConfig controls main-frame navigation policy.
type NavigationConfig struct {
	// DenyPatterns are glob patterns; matching navigations are blocked in every window.
	DenyPatterns []string `mapstructure:"deny_patterns" yaml:"deny_patterns" toml:"deny_patterns" json:"deny_patterns"`
}

// LoadingConfig tunes load lifecycle handling.
type LoadingConfig struct {
	// StopGraceMs is how long a stop waits for the engine's terminal event before one is synthesized.
	StopGraceMs int `mapstructure:"stop_grace_ms" yaml:"stop_grace_ms" toml:"stop_grace_ms" json:"stop_grace_ms" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog also writes logs under the XDG state directory.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// MaxAge is the number of days rolled log files are kept.
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	// LogDir overrides the log directory. Empty uses the XDG state directory.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
}
