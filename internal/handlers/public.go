package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/events"
)

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "lawfolio",
	})
}

// ServePage renders a portfolio page by its path. Arriving on a route makes
// it active and closes the mobile menu.
func (h *Handlers) ServePage(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	page, found := h.portfolio.Page(c.Request.URL.Path)
	if !found {
		h.NotFoundHandler(c)
		return
	}

	s.Dispatch(events.Event{Kind: events.RouteChanged, Path: page.Slug})

	view := viewPage
	if page.Slug == "/contact" {
		view = viewContact
	}

	pv := h.newPageView(c, s, view)
	pv.Page = page
	pv.Title = page.Title
	if page.Slug != "/" {
		pv.Title = page.Title + " - " + h.portfolio.Site.SiteTitle
	}
	pv.Description = page.Description

	if view == viewContact {
		snap := s.Contact.Snapshot()
		pv.Contact = &contactView{Phase: snap.Phase, Fields: snap.Fields, Invalid: map[string]bool{}}
		if snap.Phase != contact.PhaseIdle {
			pv.Refresh = 2
		}
	}

	h.render(c, http.StatusOK, pv)
}

// NotFoundHandler renders the styled 404 page. Non-GET requests get a bare status.
func (h *Handlers) NotFoundHandler(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	s, ok := visitorSession(c)
	if !ok {
		return
	}

	pv := h.newPageView(c, s, viewNotFound)
	pv.Title = "Page Not Found - " + h.portfolio.Site.SiteTitle
	h.render(c, http.StatusNotFound, pv)
}
