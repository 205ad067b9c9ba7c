package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validatePatterns("popups.deny_patterns", config.Popups.DenyPatterns)...)
	validationErrors = append(validationErrors, validatePatterns("navigation.deny_patterns", config.Navigation.DenyPatterns)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if config.Loading.StopGraceMs < 0 {
		validationErrors = append(validationErrors, "loading.stop_grace_ms must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateSearch(config *Config) []string {
	if config.Search.Template == "" {
		return []string{"search.template cannot be empty"}
	}
	if !strings.Contains(config.Search.Template, "%s") {
		return []string{"search.template must contain %s placeholder for the search query"}
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < 1 {
		validationErrors = append(validationErrors, "window.width must be positive")
	}
	if config.Window.Height < 1 {
		validationErrors = append(validationErrors, "window.height must be positive")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	for key, style := range map[string]MarkupStyle{
		"appearance.hover_markup":            config.Appearance.HoverMarkup,
		"appearance.progress_complete_style": config.Appearance.ProgressCompleteStyle,
	} {
		switch style {
		case MarkupItalic, MarkupBold, MarkupUnderline, MarkupNone:
		default:
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s must be one of: italic, bold, underline, none (got: %s)", key, style))
		}
	}
	slices.Sort(validationErrors)
	return validationErrors
}

func validatePatterns(key string, patterns []string) []string {
	var validationErrors []string
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			validationErrors = append(validationErrors, key+" must not contain empty patterns")
			continue
		}
		if _, err := glob.Compile(p); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: invalid pattern %q: %v", key, p, err))
		}
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	known := KeybindingActions()
	actions := make([]string, 0, len(config.Keybindings))
	for action := range config.Keybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	for _, action := range actions {
		if !slices.Contains(known, action) {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s is not a known action", action))
			continue
		}
		for _, key := range config.Keybindings[action] {
			if strings.TrimSpace(key) == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s contains an empty shortcut", action))
			}
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}
