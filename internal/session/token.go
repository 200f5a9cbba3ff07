// SPDX-License-Identifier: MIT
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "lawfolio"

// Tokens signs and verifies session cookie values
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens creates a signer. The token lifetime matches the idle TTL so a
// cookie never outlives the session it names by much.
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source, used by tests
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	t.now = now
	return t
}

// Issue returns a signed token whose subject is the session id
func (t *Tokens) Issue(sessionID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns the session id it carries
func (t *Tokens) Parse(tokenString string) (string, error) {
	id, _, err := t.Verify(tokenString)
	return id, err
}

// Verify checks a token and returns the session id and the token's expiry
func (t *Tokens) Verify(tokenString string) (string, time.Time, error) {
	if tokenString == "" {
		return "", time.Time{}, errors.New("token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", time.Time{}, err
	}
	if !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return "", time.Time{}, errors.New("invalid token")
	}
	return claims.Subject, claims.ExpiresAt.Time, nil
}

// ShouldRenew reports whether a token expiring at expires has used up half
// its lifetime. Renewing then keeps an active visitor's cookie alive as long
// as their session is.
func (t *Tokens) ShouldRenew(expires time.Time) bool {
	return expires.Sub(t.now()) < t.ttl/2
}
