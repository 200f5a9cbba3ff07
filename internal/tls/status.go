// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus returns the status of all managed certificates
func (m *Manager) GetCertificateStatus() ([]CertificateStatus, error) {
	var statuses []CertificateStatus

	for _, domain := range m.GetAllowedDomains() {
		status, ok, err := CertificateStatusFor(m.cfg.CertDir, domain, time.Now())
		if err != nil {
			return nil, err
		}
		if ok {
			statuses = append(statuses, status)
		}
	}

	return statuses, nil
}

// caDirs are the certmagic storage folders for the production and staging CAs
var caDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// CertificateStatusFor reads the stored certificate for domain. Certmagic
// keeps it at {certDir}/certificates/{ca}/{domain}/{domain}.crt. A domain
// without a readable certificate is reported as not provisioned (ok=false).
func CertificateStatusFor(certDir, domain string, now time.Time) (CertificateStatus, bool, error) {
	for _, ca := range caDirs {
		certPath := filepath.Join(certDir, "certificates", ca, domain, domain+".crt")
		certPEM, err := os.ReadFile(certPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return CertificateStatus{}, false, fmt.Errorf("failed to read certificate for %s: %w", domain, err)
		}

		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		return CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(cert.NotAfter.Sub(now).Hours() / 24),
		}, true, nil
	}
	return CertificateStatus{}, false, nil
}
