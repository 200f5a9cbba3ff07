// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/session"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "lawfolio_session"
	sessionContextKey = "session"
)

// SessionMiddleware resolves the visitor's session from the signed cookie.
// A missing, forged or expired cookie, or one naming an evicted session,
// starts a fresh session and reissues the cookie. A valid cookie past half
// its lifetime is reissued for the same session so it slides with activity.
func SessionMiddleware(store *session.Store, tokens *session.Tokens, secure bool, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	setCookie := func(c *gin.Context, s *session.Session) bool {
		token, err := tokens.Issue(s.ID)
		if err != nil {
			log.Error("failed to issue session token", zap.String("session", s.ID), zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return false
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, token, 0, "/", "", secure, true)
		return true
	}

	return func(c *gin.Context) {
		if raw, err := c.Cookie(sessionCookieName); err == nil && raw != "" {
			if id, expires, err := tokens.Verify(raw); err == nil {
				if s, ok := store.Get(id); ok {
					if tokens.ShouldRenew(expires) && !setCookie(c, s) {
						return
					}
					c.Set(sessionContextKey, s)
					c.Next()
					return
				}
			}
		}

		s := store.Create()
		if !setCookie(c, s) {
			return
		}
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// GetSession returns the session resolved for this request
func GetSession(c *gin.Context) (*session.Session, bool) {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	s, ok := val.(*session.Session)
	return s, ok
}
