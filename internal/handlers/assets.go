// SPDX-License-Identifier: MIT
package handlers

import (
	_ "embed"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static/app.js
var appScript []byte

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
	<circle cx="50" cy="50" r="46" fill="#111827"/>
	<path d="M30 38h40M50 26v52M36 78h28" stroke="#d4a017" stroke-width="5" stroke-linecap="round" fill="none"/>
	<path d="M30 38l-10 20h20zM70 38l-10 20h20z" fill="#d4a017"/>
</svg>`

// FaviconHandler serves the scales-of-justice icon
func FaviconHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(faviconSVG))
}

// ThemeCSSHandler serves the color variables for the configured palette
func (h *Handlers) ThemeCSSHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", h.themeCSS)
}

// SiteCSSHandler serves the layout stylesheet
func SiteCSSHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(GetSiteCSS()))
}

// ScriptHandler serves the page script
func ScriptHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", appScript)
}

// ServeAssetHandler serves profile and background images from the assets directory
func (h *Handlers) ServeAssetHandler(c *gin.Context) {
	filename := strings.TrimPrefix(c.Param("filepath"), "/")
	if filename == "" || h.assetsDir == "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	// Reject traversal out of the assets directory
	clean := filepath.Clean("/" + filename)
	if strings.Contains(filename, "..") || clean == "/" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.File(filepath.Join(h.assetsDir, clean))
}
