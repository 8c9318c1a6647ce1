package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"admincli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "console.db", cfg.StoragePath)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("ADMINCLI_BASE_URL", "http://api.example.com")
	t.Setenv("ADMINCLI_PAGE_SIZE", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com", cfg.BaseURL)
	assert.Equal(t, 5, cfg.PageSize)
}

func TestLoadConfig_JsonOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "http://json.example.com",
		"request_timeout": "30s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("ADMINCLI_BASE_URL", "http://env.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://json.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Untouched fields keep earlier values.
	assert.Equal(t, "console.db", cfg.StoragePath)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example.com", "-t", "3", "-s", "alt.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alt.db", cfg.StoragePath)
}
