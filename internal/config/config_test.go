package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Flags{EnvFile: "does-not-exist.env"})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.NotEmpty(t, cfg.Data.Path)
	assert.Equal(t, 720*time.Hour, cfg.Session.MarkerTTL)
	assert.Equal(t, 5, cfg.Session.LoginBurst)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("ENV", "staging")

	cfg, err := Load(Flags{Environment: "production", EnvFile: "does-not-exist.env"})
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestLoad_EnvVariable(t *testing.T) {
	t.Setenv("MARKER_TTL", "24h")
	t.Setenv("ADMIN_EMAIL", "root@musclemap.app")

	cfg, err := Load(Flags{EnvFile: "does-not-exist.env"})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Session.MarkerTTL)
	assert.Equal(t, "root@musclemap.app", cfg.Session.AdminEmail)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\n# comment\nINTEGRATIONS_FILE=\"/tmp/integrations.json\"\n"), 0o600))

	// Process env must win over the .env file.
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(Flags{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "/tmp/integrations.json", cfg.Integrations.FilePath)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	_, err := Load(Flags{Environment: "qa", EnvFile: "does-not-exist.env"})
	assert.Error(t, err)
}

func TestLoad_InvalidMarkerTTL(t *testing.T) {
	t.Setenv("MARKER_TTL", "soon")

	_, err := Load(Flags{EnvFile: "does-not-exist.env"})
	assert.Error(t, err)
}
