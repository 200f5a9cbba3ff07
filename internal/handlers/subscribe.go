package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/ui"
	"go.uber.org/zap"
)

type subscribeRequest struct {
	Email  string `form:"email" json:"email" binding:"required,email"`
	Return string `form:"return" json:"-"`
}

// SubscribeHandler accepts a newsletter sign-up. The address is validated
// and logged; nothing is stored.
func (h *Handlers) SubscribeHandler(c *gin.Context) {
	var req subscribeRequest
	err := c.ShouldBind(&req)

	if wantsJSON(c) {
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please enter a valid email address."})
			return
		}
		h.logSubscription(req.Email)
		c.JSON(http.StatusOK, gin.H{"status": "subscribed"})
		return
	}

	status := "subscribed"
	if err != nil {
		status = "invalid"
	} else {
		h.logSubscription(req.Email)
	}

	target := safeReturnPath(c.PostForm("return"))
	c.Redirect(http.StatusSeeOther, target+"?newsletter="+url.QueryEscape(status)+"#newsletter")
}

func (h *Handlers) logSubscription(email string) {
	h.log.Info("newsletter subscription", zap.String("email", strings.TrimSpace(email)))
}

// safeReturnPath keeps redirects on this site
func safeReturnPath(raw string) string {
	path := ui.NormalizeRoute(raw)
	if strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return "/"
	}
	return path
}
