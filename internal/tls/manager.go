// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"go.uber.org/zap"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	log       *zap.Logger
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer

	// configForCert is what the cache uses when maintaining a certificate
	configForCert func(certmagic.Certificate) (*certmagic.Config, error)
}

// NewManager creates a TLS manager for the configured domains. Call Manage
// to start obtaining certificates.
func NewManager(cfg *Config, log *zap.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	// Renewals of cached certificates must use our storage and issuer
	var magicCfg *certmagic.Config
	configForCert := func(certmagic.Certificate) (*certmagic.Config, error) {
		return magicCfg, nil
	}
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: configForCert,
	})

	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
		Logger:  log.Named("certmagic"),
	})

	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
		Logger: log.Named("acme"),
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{
		cfg:       cfg,
		log:       log,
		certmagic: magicCfg,
		issuer:    issuer,

		configForCert: configForCert,
	}, nil
}

// GetAllowedDomains lists every domain that should have a certificate
func (m *Manager) GetAllowedDomains() []string {
	return m.cfg.Domains()
}

// Manage tells certmagic to obtain and renew certificates in the background
func (m *Manager) Manage(ctx context.Context) error {
	domains := m.GetAllowedDomains()
	if len(domains) == 0 {
		return fmt.Errorf("no domains configured")
	}

	m.log.Info("managing certificates", zap.Strings("domains", domains))

	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}
	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}

// HTTPHandler answers ACME HTTP-01 challenges and passes every other request
// to next. The plain HTTP server must be wrapped with it for issuance to
// succeed when the TLS-ALPN challenge is unavailable.
func (m *Manager) HTTPHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}
