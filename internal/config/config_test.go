package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/madelynseal/spord-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.WriteDefault(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Stdout)
	assert.Equal(t, "spord-tracker.db", cfg.Store.Location)
	assert.Equal(t, "127.0.0.1:8080", cfg.Web.Listen)
	assert.False(t, cfg.Web.HTTPS)

	// Generated keys must decode and be usable as cookie keys.
	assert.Len(t, cfg.Web.SessionKeyBytes(), 32)
	assert.Len(t, cfg.Web.CSRFKeyBytes(), 32)
}

func TestLoadOrCreateWritesMissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := config.LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "spord-tracker.db", cfg.Store.Location)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, config.LogConfig{Level: tt.level}.SlogLevel(), "level %q", tt.level)
	}
}

func TestKeyFallback(t *testing.T) {
	// Short or garbage keys fall back to random 32-byte keys instead of
	// failing startup.
	web := config.WebConfig{SessionKey: "dG9vc2hvcnQ=", CSRFKey: "!!not base64!!"}
	assert.Len(t, web.SessionKeyBytes(), 32)
	assert.Len(t, web.CSRFKeyBytes(), 32)
}
