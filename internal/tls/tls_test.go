package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caddyserver/certmagic"
)

func writeTestCert(t *testing.T, certDir, ca, domain string, notAfter time.Time) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: domain},
		Issuer:       pkix.Name{CommonName: domain},
		DNSNames:     []string{domain},
		NotBefore:    notAfter.Add(-90 * 24 * time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	dir := filepath.Join(certDir, "certificates", ca, domain)
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("failed to create cert dir: %v", err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(filepath.Join(dir, domain+".crt"), certPEM, 0600); err != nil {
		t.Fatalf("failed to write certificate: %v", err)
	}
}

func TestDomainsDeduplicates(t *testing.T) {
	cfg := &Config{
		BaseDomain:   "Portfolio.example",
		ExtraDomains: []string{"www.portfolio.example", "", "portfolio.example", " www.portfolio.example "},
	}

	got := cfg.Domains()
	want := []string{"portfolio.example", "www.portfolio.example"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("domain %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled needs nothing", Config{}, false},
		{"enabled without email", Config{Enabled: true, BaseDomain: "portfolio.example"}, true},
		{"enabled on localhost", Config{Enabled: true, Email: "me@portfolio.example", BaseDomain: "localhost"}, true},
		{"enabled and complete", Config{Enabled: true, Email: "me@portfolio.example", BaseDomain: "portfolio.example"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCertificateStatusFor(t *testing.T) {
	certDir := t.TempDir()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	writeTestCert(t, certDir, caDirs[1], "portfolio.example", now.Add(30*24*time.Hour))

	status, ok, err := CertificateStatusFor(certDir, "portfolio.example", now)
	if err != nil {
		t.Fatalf("CertificateStatusFor failed: %v", err)
	}
	if !ok {
		t.Fatal("expected certificate to be found under the staging CA")
	}
	if status.DaysUntilExpiry != 30 {
		t.Errorf("expected 30 days until expiry, got %d", status.DaysUntilExpiry)
	}
	if status.Issuer != "portfolio.example" {
		t.Errorf("unexpected issuer %q", status.Issuer)
	}

	_, ok, err = CertificateStatusFor(certDir, "other.example", now)
	if err != nil {
		t.Fatalf("CertificateStatusFor failed: %v", err)
	}
	if ok {
		t.Error("domain without a certificate should not be reported")
	}
}

func TestManagerStatusListsProvisionedDomains(t *testing.T) {
	certDir := t.TempDir()
	writeTestCert(t, certDir, caDirs[0], "portfolio.example", time.Now().Add(60*24*time.Hour))

	m, err := NewManager(&Config{
		Email:        "me@portfolio.example",
		CertDir:      certDir,
		BaseDomain:   "portfolio.example",
		ExtraDomains: []string{"www.portfolio.example"},
	}, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	statuses, err := m.GetCertificateStatus()
	if err != nil {
		t.Fatalf("GetCertificateStatus failed: %v", err)
	}
	if len(statuses) != 1 || statuses[0].Domain != "portfolio.example" {
		t.Fatalf("expected only the provisioned domain, got %+v", statuses)
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(&Config{
		Email:      "me@portfolio.example",
		CertDir:    t.TempDir(),
		BaseDomain: "portfolio.example",
		Staging:    true,
	}, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func TestCacheMaintainsCertsWithManagerConfig(t *testing.T) {
	m := newTestManager(t)

	got, err := m.configForCert(certmagic.Certificate{})
	if err != nil {
		t.Fatalf("configForCert failed: %v", err)
	}
	if got != m.certmagic {
		t.Fatal("cached certificates should be maintained with the manager's config")
	}
	if got == &certmagic.Default {
		t.Fatal("certmagic.Default has neither our storage nor our issuer")
	}
	if len(got.Issuers) != 1 || got.Issuers[0] != certmagic.Issuer(m.issuer) {
		t.Fatalf("expected the ACME issuer, got %+v", got.Issuers)
	}
}

func TestHTTPHandlerPassesThroughOrdinaryRequests(t *testing.T) {
	m := newTestManager(t)

	var served bool
	h := m.HTTPHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	if !served {
		t.Fatal("non-challenge request should reach the site")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("expected %d, got %d", http.StatusTeapot, w.Code)
	}
}
