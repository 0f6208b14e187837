package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadBoard_Defaults(t *testing.T) {
	cfg, err := LoadBoard(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Timeout())
	require.Equal(t, 5000*time.Millisecond, cfg.HideDelay())
	require.Equal(t, "en", cfg.Locale)
}

func TestLoadBoard_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url = "http://signup.mergington.edu"
timeout_seconds = 3
hide_delay_ms = 2500
locale = "es"
`), 0o644))

	cfg, err := LoadBoard(path)
	require.NoError(t, err)
	require.Equal(t, "http://signup.mergington.edu", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Timeout())
	require.Equal(t, 2500*time.Millisecond, cfg.HideDelay())
	require.Equal(t, "es", cfg.Locale)
}

func TestLoadBoard_EnvOverride(t *testing.T) {
	t.Setenv("ACTIVITYBOARD_URL", "http://example.test:9000")

	cfg, err := LoadBoard(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, "http://example.test:9000", cfg.BaseURL)
}

func TestLoadBoard_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = `), 0o644))

	_, err := LoadBoard(path)
	require.Error(t, err)
}
