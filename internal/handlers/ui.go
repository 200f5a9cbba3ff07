// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/events"
)

type scrollRequest struct {
	Y int `json:"y" form:"y"`
}

type resizeRequest struct {
	Width int `json:"width" form:"width" binding:"min=0"`
}

type navigateRequest struct {
	Path string `json:"path" form:"path" binding:"required"`
}

// StateHandler returns the visitor's current view state
func (h *Handlers) StateHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// MenuToggleHandler opens or closes the mobile menu. The no-script form
// posts back to the page it came from.
func (h *Handlers) MenuToggleHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	s.Dispatch(events.Event{Kind: events.MenuToggled})

	if wantsJSON(c) {
		c.JSON(http.StatusOK, s.Snapshot())
		return
	}
	c.Redirect(http.StatusSeeOther, safeReturnPath(c.PostForm("return")))
}

// ScrollHandler records the page's vertical offset
func (h *Handlers) ScrollHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	var req scrollRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scroll offset"})
		return
	}

	s.Dispatch(events.Event{Kind: events.Scrolled, Y: req.Y})
	c.JSON(http.StatusOK, s.Snapshot())
}

// ResizeHandler records the viewport width
func (h *Handlers) ResizeHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	var req resizeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid viewport width"})
		return
	}

	s.Dispatch(events.Event{Kind: events.Resized, Width: req.Width})
	c.JSON(http.StatusOK, s.Snapshot())
}

// NavigateHandler handles a link activation from the page script
func (h *Handlers) NavigateHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	var req navigateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is required"})
		return
	}

	s.Navigate(safeReturnPath(req.Path))
	c.JSON(http.StatusOK, s.Snapshot())
}
