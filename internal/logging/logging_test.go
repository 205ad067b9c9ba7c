package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestContextHelpers_AddFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithContext(context.Background(), logger)

	ctx = WithComponent(ctx, "chrome")
	ctx = WithWindowID(ctx, "w-1")
	ctx = WithURL(ctx, "https://example.com")
	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"chrome"`)
	assert.Contains(t, out, `"window_id":"w-1"`)
	assert.Contains(t, out, `"url":"https://example.com"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}

func TestNew_CopiesToFile(t *testing.T) {
	var file bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = &file

	logger := New(cfg)
	logger.Info().Str("k", "v").Msg("to file")

	assert.Contains(t, file.String(), `"k":"v"`)
}

func TestRecoverCallback_SwallowsPanic(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	assert.NotPanics(t, func() {
		defer RecoverCallback(ctx, "load-changed")
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"callback":"load-changed"`)
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}

func TestFileSink_RollsAndCleansUp(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, logFileName+".2000-01-01-00-00-00")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0600))
	old := time.Now().Add(-72 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	sink, err := OpenFileSink(dir, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale rolled file should be removed")

	sink.maxSize = 8
	_, err = sink.Write([]byte("12345"))
	require.NoError(t, err)
	_, err = sink.Write([]byte("67890"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var rolled int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			rolled++
		}
	}
	assert.Equal(t, 1, rolled)

	current, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Equal(t, "67890", string(current))
}
