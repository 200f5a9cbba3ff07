// SPDX-License-Identifier: MIT

// Package handlers serves the portfolio pages and the endpoints that feed
// browser events into the visitor's session.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/content"
	"github.com/temotunadze/lawfolio/internal/middleware"
	"github.com/temotunadze/lawfolio/internal/session"
	"github.com/temotunadze/lawfolio/internal/themes"
	"go.uber.org/zap"
)

// Config holds everything the router needs
type Config struct {
	Portfolio   *content.Portfolio
	Sessions    *session.Store
	Tokens      *session.Tokens
	Logger      *zap.Logger
	RateLimiter *middleware.RateLimiter

	Palette    string
	DarkMode   bool
	AssetsDir  string
	BlockedIPs []string
	TLSEnabled bool
	HTTPSPort  string
}

// Handlers serves the public site for one portfolio
type Handlers struct {
	portfolio *content.Portfolio
	sessions  *session.Store
	log       *zap.Logger
	themeCSS  []byte
	assetsDir string
}

// New creates the handlers for cfg
func New(cfg Config) *Handlers {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Handlers{
		portfolio: cfg.Portfolio,
		sessions:  cfg.Sessions,
		log:       cfg.Logger,
		themeCSS:  []byte(themes.Stylesheet(cfg.Palette, cfg.DarkMode)),
		assetsDir: cfg.AssetsDir,
	}
}

// NewRouter builds the gin engine with the full middleware stack
func NewRouter(cfg Config) *gin.Engine {
	h := New(cfg)

	r := gin.New()
	r.Use(middleware.RequestLogger(h.log), gin.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.TLSEnabled))
	r.Use(middleware.IPFilterMiddleware(cfg.BlockedIPs, h.log))
	if cfg.TLSEnabled {
		r.Use(middleware.HTTPSRedirectMiddleware(cfg.HTTPSPort))
	}

	// System routes (no session needed)
	r.GET("/health", HealthHandler)
	r.GET("/favicon.ico", FaviconHandler)
	r.GET("/theme.css", h.ThemeCSSHandler)
	r.GET("/static/site.css", SiteCSSHandler)
	r.GET("/static/app.js", ScriptHandler)
	r.GET("/static/img/*filepath", h.ServeAssetHandler)

	visitor := []gin.HandlerFunc{
		middleware.SessionMiddleware(cfg.Sessions, cfg.Tokens, cfg.TLSEnabled, h.log),
		middleware.CSRFMiddleware(cfg.TLSEnabled),
	}

	site := r.Group("/", visitor...)
	if cfg.RateLimiter != nil {
		site.Use(middleware.RateLimitMiddleware(cfg.RateLimiter, "/contact", "/subscribe"))
	}
	{
		for _, slug := range cfg.Portfolio.Slugs() {
			site.GET(slug, h.ServePage)
		}
		site.POST("/contact", h.ContactSubmitHandler)
		site.POST("/subscribe", h.SubscribeHandler)

		uiGroup := site.Group("/ui")
		uiGroup.GET("/state", h.StateHandler)
		uiGroup.GET("/ws", h.WebSocketHandler)
		uiGroup.POST("/menu", h.MenuToggleHandler)
		uiGroup.POST("/scroll", h.ScrollHandler)
		uiGroup.POST("/resize", h.ResizeHandler)
		uiGroup.POST("/navigate", h.NavigateHandler)
	}

	r.NoRoute(append(visitor, h.NotFoundHandler)...)

	return r
}

// visitorSession returns the session resolved by the middleware
func visitorSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
	}
	return s, ok
}
