package config

import (
	"fmt"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/shower/internal/logging"
)

// Watch reloads the file whenever it changes on disk and hands each accepted
// config to the OnConfigChange subscribers, on the fsnotify goroutine.
// Calling it again is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.watching {
		m.viper.OnConfigChange(m.handleFileEvent)
		m.viper.WatchConfig()
		m.watching = true
	}
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv().With().Str("file", e.Name).Logger()
	log.Debug().Stringer("op", e.Op).Msg("config file changed on disk")

	if err := m.Reload(); err != nil {
		log.Warn().Err(err).Msg("config reload rejected, previous values stay active")
	}
}

// OnConfigChange subscribes fn to every accepted reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// Reload re-reads the file and notifies subscribers. A file that cannot be
// read or fails validation leaves the active config untouched.
func (m *Manager) Reload() error {
	next, subscribers, err := m.swapFromFile()
	if err != nil {
		return err
	}
	for _, fn := range subscribers {
		fn(next)
	}
	return nil
}

// swapFromFile installs the file's config under the lock and returns the
// subscribers to notify once the lock is released.
func (m *Manager) swapFromFile() (*Config, []func(*Config), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("failed to re-read %s: %w", m.viper.ConfigFileUsed(), err)
	}
	next, err := m.unmarshalConfig()
	if err != nil {
		return nil, nil, err
	}
	normalizeConfig(next)
	if err := validateConfig(next); err != nil {
		return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = next
	return next, slices.Clone(m.callbacks), nil
}
