// Package config loads, validates and watches shower's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// configDir is where the default config and schema are created.
	configDir string
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/shower/config.toml.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a manager rooted at configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SHOWER_APP_NAME, SHOWER_SEARCH_TEMPLATE, SHOWER_LOGGING_LEVEL...
	v.SetEnvPrefix("SHOWER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv, used before config is loaded.
	if err := v.BindEnv("logging.level", "SHOWER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHOWER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHOWER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHOWER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		configDir: configDir,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = filepath.Join(m.configDir, "config.toml")
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.AppName = strings.TrimSpace(config.AppName)
	if config.AppName == "" {
		config.AppName = defaultAppName
	}
	config.HomePage = strings.TrimSpace(config.HomePage)
	config.Search.Template = strings.TrimSpace(config.Search.Template)

	config.Appearance.HoverMarkup = normalizeMarkup(config.Appearance.HoverMarkup, MarkupItalic)
	config.Appearance.ProgressCompleteStyle = normalizeMarkup(config.Appearance.ProgressCompleteStyle, MarkupBold)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	// Bindings from the file replace the defaults per action; missing actions keep theirs.
	merged := DefaultKeybindings()
	for action, keys := range config.Keybindings {
		merged[strings.ToLower(action)] = keys
	}
	config.Keybindings = merged
}

func normalizeMarkup(s, fallback MarkupStyle) MarkupStyle {
	switch MarkupStyle(strings.ToLower(string(s))) {
	case MarkupItalic:
		return MarkupItalic
	case MarkupBold:
		return MarkupBold
	case MarkupUnderline:
		return MarkupUnderline
	case MarkupNone:
		return MarkupNone
	case "":
		return fallback
	default:
		// Left as-is so validation reports it.
		return s
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the default config and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(m.configDir, "config.schema.json")); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("app_name", defaults.AppName)
	m.viper.SetDefault("home_page", defaults.HomePage)
	m.viper.SetDefault("search.template", defaults.Search.Template)

	m.setWindowDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setPolicyDefaults(defaults)
	m.setLoggingDefaults(defaults)

	m.viper.SetDefault("loading.stop_grace_ms", defaults.Loading.StopGraceMs)
	m.viper.SetDefault("keybindings", defaults.Keybindings)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.hover_markup", string(defaults.Appearance.HoverMarkup))
	m.viper.SetDefault("appearance.progress_complete_style", string(defaults.Appearance.ProgressCompleteStyle))
	m.viper.SetDefault("appearance.tls_indicator", defaults.Appearance.TLSIndicator)
	m.viper.SetDefault("appearance.css", defaults.Appearance.CSS)
}

func (m *Manager) setPolicyDefaults(defaults *Config) {
	m.viper.SetDefault("popups.enabled", defaults.Popups.Enabled)
	m.viper.SetDefault("popups.deny_patterns", defaults.Popups.DenyPatterns)
	m.viper.SetDefault("popups.block_cross_site_without_gesture", defaults.Popups.BlockCrossSiteWithoutGesture)
	m.viper.SetDefault("navigation.deny_patterns", defaults.Navigation.DenyPatterns)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
}

// Global configuration manager instance
var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration, or defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
