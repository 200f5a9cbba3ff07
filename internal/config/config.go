// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	// LAWFOLIO_SERVER_HTTP_PORT overrides server.http_port, etc.
	v.SetEnvPrefix("lawfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.tls_enabled", false)

	// Content store defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "file::memory:?cache=shared")

	// Session defaults
	v.SetDefault("session.secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("session.idle_ttl", "30m")
	v.SetDefault("session.sweep_interval", "1m")

	// View state defaults
	v.SetDefault("ui.navbar_scroll_threshold", 20)
	v.SetDefault("ui.scroll_top_threshold", 300)
	v.SetDefault("ui.breakpoint", 768)

	// Contact form timing
	v.SetDefault("contact.submit_delay", "1500ms")
	v.SetDefault("contact.reset_delay", "3s")

	// Rate limiting for form posts
	v.SetDefault("ratelimit.capacity", 5)
	v.SetDefault("ratelimit.interval", "1m")

	v.SetDefault("security.blocked_ips", []string{})

	// Profile and background images served under /static/img
	v.SetDefault("assets.dir", "/var/lib/lawfolio/assets")

	// Theme defaults
	v.SetDefault("theme.palette", "gold")
	v.SetDefault("theme.dark_mode", true)

	// TLS defaults
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/lawfolio/certs")
	v.SetDefault("tls.staging", false)
	v.SetDefault("tls.extra_domains", []string{})
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a list of strings
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
