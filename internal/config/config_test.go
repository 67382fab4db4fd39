package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./data.db", cfg.Database.Path)
	assert.Equal(t, ":8081", cfg.WebUI.Addr)
	assert.Equal(t, DefaultSessionSecret, cfg.WebUI.SessionSecret)
	assert.Equal(t, 5*time.Minute, cfg.WebUI.SessionMaxAge)
	assert.Equal(t, time.Hour, cfg.WebUI.SessionCleanup)
	assert.True(t, cfg.Profiles.AllowDuplicateSSID)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /var/lib/eapprofiles/data.db
webui:
  addr: 127.0.0.1:9000
  session_secret: s3cret
  session_max_age: 30m
profiles:
  allow_duplicate_ssid: false
logging:
  format: json
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/eapprofiles/data.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.WebUI.Addr)
	assert.Equal(t, "s3cret", cfg.WebUI.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.WebUI.SessionMaxAge)
	assert.Equal(t, time.Hour, cfg.WebUI.SessionCleanup)
	assert.False(t, cfg.Profiles.AllowDuplicateSSID)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("webui:\n  addr: :9000\n"), 0600))

	t.Setenv("EAPPROFILES_WEBUI_ADDR", ":9100")
	t.Setenv("EAPPROFILES_PROFILES_ALLOW_DUPLICATE_SSID", "false")
	t.Setenv("EAPPROFILES_WEBUI_SESSION_CLEANUP", "10m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.WebUI.Addr)
	assert.False(t, cfg.Profiles.AllowDuplicateSSID)
	assert.Equal(t, 10*time.Minute, cfg.WebUI.SessionCleanup)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := map[string]func(*Config){
		"database path":   func(c *Config) { c.Database.Path = "" },
		"addr":            func(c *Config) { c.WebUI.Addr = "" },
		"session secret":  func(c *Config) { c.WebUI.SessionSecret = "" },
		"session max age": func(c *Config) { c.WebUI.SessionMaxAge = 0 },
		"session cleanup": func(c *Config) { c.WebUI.SessionCleanup = -time.Second },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
