package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"boardcli"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	require.Equal(t, "boardcli.db", c.DatabasePath)
	require.Equal(t, 20*time.Second, c.RequestTimeout)
}

func TestLoadJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "https://panel.example.com",
		"request_timeout": "45s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := Load()
	require.Equal(t, "https://panel.example.com", cfg.ServerBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	// Unset JSON fields keep their defaults.
	require.Equal(t, "boardcli.db", cfg.DatabasePath)
}

func TestEnvOverridesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url": "https://from-json"}`), 0o600))

	withArgs(t, "-c", path)
	t.Setenv("BOARD_SERVER_URL", "https://from-env")

	cfg := Load()
	require.Equal(t, "https://from-env", cfg.ServerBaseURL)
}

func TestFlagsOverrideEverything(t *testing.T) {
	t.Setenv("BOARD_SERVER_URL", "https://from-env")
	withArgs(t, "-a", "https://from-flag", "-t", "7", "-d", "alt.db")

	cfg := Load()
	require.Equal(t, "https://from-flag", cfg.ServerBaseURL)
	require.Equal(t, "alt.db", cfg.DatabasePath)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestEnvTimeout(t *testing.T) {
	withArgs(t)
	t.Setenv("BOARD_TIMEOUT", "90s")

	cfg := Load()
	require.Equal(t, 90*time.Second, cfg.RequestTimeout)
}
