// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHTTPSRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		port     string
		host     string
		target   string
		wantCode int
		wantLoc  string
	}{
		{"default port", "443", "temo.ge", "/about?x=1", 301, "https://temo.ge/about?x=1"},
		{"strips http port", "443", "temo.ge:80", "/", 301, "https://temo.ge/"},
		{"custom port", "8443", "localhost:8080", "/contact", 301, "https://localhost:8443/contact"},
		{"acme challenge", "443", "temo.ge", "/.well-known/acme-challenge/abc", 200, ""},
		{"health", "443", "temo.ge", "/health", 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", tt.target, nil)
			c.Request.Host = tt.host

			HTTPSRedirectMiddleware(tt.port)(c)

			if !c.IsAborted() {
				if tt.wantCode != 200 {
					t.Fatalf("Expected redirect, request passed through")
				}
				return
			}
			if w.Code != tt.wantCode {
				t.Errorf("Expected %d, got %d", tt.wantCode, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("Expected Location %s, got %s", tt.wantLoc, loc)
			}
		})
	}
}
