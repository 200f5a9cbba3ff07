// SPDX-License-Identifier: MIT
package tls

import (
	"fmt"
	"os"
	"strings"

	"github.com/temotunadze/lawfolio/internal/config"
)

// Config holds TLS configuration
type Config struct {
	Email        string
	CertDir      string
	Staging      bool
	BaseDomain   string
	ExtraDomains []string
	Enabled      bool
}

// LoadConfig loads TLS configuration from config system
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Email:        config.GetString("tls.email"),
		CertDir:      config.GetString("tls.cert_dir"),
		Staging:      config.GetBool("tls.staging"),
		BaseDomain:   config.GetString("server.base_domain"),
		ExtraDomains: config.GetStringSlice("tls.extra_domains"),
		Enabled:      config.GetBool("server.tls_enabled"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create cert directory if it doesn't exist
	if cfg.CertDir != "" {
		if err := os.MkdirAll(cfg.CertDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create cert directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks the fields required when TLS is enabled
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Email == "" {
		return fmt.Errorf("tls.email is required when TLS is enabled")
	}
	if c.BaseDomain == "" || c.BaseDomain == "localhost" {
		return fmt.Errorf("server.base_domain must be a public domain when TLS is enabled")
	}
	return nil
}

// Domains returns the base domain followed by the extra domains, without
// blanks or duplicates
func (c *Config) Domains() []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range append([]string{c.BaseDomain}, c.ExtraDomains...) {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
