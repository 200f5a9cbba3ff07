// SPDX-License-Identifier: MIT
package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse(t *testing.T) {
	tokens, err := NewTokens("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokens failed: %v", err)
	}

	token, err := tokens.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	id, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if id != "abc-123" {
		t.Errorf("Expected session id abc-123, got %s", id)
	}
}

func TestParseWrongSecret(t *testing.T) {
	a, _ := NewTokens("secret-a", time.Hour)
	b, _ := NewTokens("secret-b", time.Hour)

	token, err := a.Issue("abc")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := b.Parse(token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestParseExpired(t *testing.T) {
	tokens, _ := NewTokens("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "abc",
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := tokens.Parse(token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestParseGarbage(t *testing.T) {
	tokens, _ := NewTokens("test-secret", time.Hour)

	for _, in := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestNewTokensRequiresSecret(t *testing.T) {
	if _, err := NewTokens("", time.Hour); err == nil {
		t.Error("empty secret should be rejected")
	}
}

func TestShouldRenewAfterHalfLifetime(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	tokens, _ := NewTokens("test-secret", 10*time.Minute)
	tokens.WithClock(func() time.Time { return now })

	token, err := tokens.Issue("abc")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	_, expires, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !expires.Equal(now.Add(10 * time.Minute)) {
		t.Errorf("Expected expiry %v, got %v", now.Add(10*time.Minute), expires)
	}

	if tokens.ShouldRenew(expires) {
		t.Error("fresh token should not need renewal")
	}
	now = now.Add(6 * time.Minute)
	if !tokens.ShouldRenew(expires) {
		t.Error("token past half its lifetime should be renewed")
	}
}
