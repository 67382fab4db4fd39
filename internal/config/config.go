// Package config loads the service configuration from file, environment
// and defaults.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/blast007/wifi-eap-profiles/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. EAPPROFILES_WEBUI_ADDR
const EnvPrefix = "EAPPROFILES"

// DefaultSessionSecret is only meant for local use; Validate rejects an
// empty secret but not this one.
const DefaultSessionSecret = "secret"

// Config is the complete service configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	WebUI    WebUIConfig    `mapstructure:"webui"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
	Logging  logging.Config `mapstructure:"logging"`
}

// DatabaseConfig locates the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// WebUIConfig configures the admin web API
type WebUIConfig struct {
	Addr           string        `mapstructure:"addr"`
	SessionSecret  string        `mapstructure:"session_secret"`
	SessionMaxAge  time.Duration `mapstructure:"session_max_age"`
	SessionCleanup time.Duration `mapstructure:"session_cleanup"`
}

// ProfilesConfig holds the profile store gateway policy
type ProfilesConfig struct {
	AllowDuplicateSSID bool `mapstructure:"allow_duplicate_ssid"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "./data.db")
	v.SetDefault("webui.addr", ":8081")
	v.SetDefault("webui.session_secret", DefaultSessionSecret)
	v.SetDefault("webui.session_max_age", 5*time.Minute)
	v.SetDefault("webui.session_cleanup", time.Hour)
	v.SetDefault("profiles.allow_duplicate_ssid", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration file at path, if any, applies environment
// overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.WebUI.Addr == "" {
		return errors.New("webui.addr is required")
	}
	if c.WebUI.SessionSecret == "" {
		return errors.New("webui.session_secret is required")
	}
	if c.WebUI.SessionMaxAge <= 0 {
		return errors.New("webui.session_max_age must be positive")
	}
	if c.WebUI.SessionCleanup <= 0 {
		return errors.New("webui.session_cleanup must be positive")
	}
	return nil
}
