package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shower/internal/domain/build"
	"github.com/bnema/shower/internal/infrastructure/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionShort(t *testing.T) {
	SetBuildInfo(build.Info{Version: "v9.9.9", Commit: "deadbee", BuildDate: "2026-10-16", GoVersion: "go1.25.3"})
	out := execute(t, "version", "--short")
	assert.Equal(t, "shower v9.9.9 (deadbee, built 2026-10-16, go1.25.3)\n", out)
}

func TestConfigPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))

	out := execute(t, "config", "path")
	assert.Contains(t, out, filepath.Join(tmp, "config", "shower", "config.toml"))
	assert.Contains(t, out, filepath.Join(tmp, "state", "shower", "logs"))
}

func TestConfigSchemaStdout(t *testing.T) {
	out := execute(t, "config", "schema", "--stdout")

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Shower Configuration", schema["title"])
}

func TestConfigResetWithoutExistingFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))

	out := execute(t, "config", "reset")
	assert.Contains(t, out, "default config written")

	data, err := os.ReadFile(filepath.Join(tmp, "config", "shower", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[keybindings]")
}

func TestEffectiveBindings(t *testing.T) {
	got := effectiveBindings(map[string][]string{
		config.ActionReload: {"f5"},
		"unknown_action":    {"ctrl+q"},
	})

	assert.Len(t, got, len(config.KeybindingActions()))
	assert.Equal(t, []string{"f5"}, got[config.ActionReload])
	assert.Nil(t, got[config.ActionStop])
	assert.NotContains(t, got, "unknown_action")
}

func TestNewLogger_FileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = t.TempDir()
	cfg.Logging.Format = "json"

	logger, closeLog, err := newLogger(cfg, "debug")
	require.NoError(t, err)
	logger.Debug().Msg("hello from the test")
	closeLog()

	data, err := os.ReadFile(filepath.Join(cfg.Logging.LogDir, "shower.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
}
