// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/session"
	"go.uber.org/zap"
)

// ContactSubmitHandler feeds the posted form into the session's contact
// state and starts the simulated submission
func (h *Handlers) ContactSubmitHandler(c *gin.Context) {
	s, ok := visitorSession(c)
	if !ok {
		return
	}

	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		h.contactError(c, s, http.StatusBadRequest, fields, nil, "The form could not be read, please try again.")
		return
	}
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.Subject = strings.TrimSpace(fields.Subject)

	err := s.Contact.SetFields(fields)
	if err == nil {
		err = s.Contact.Submit()
	}

	var verr *contact.ValidationError
	switch {
	case err == nil:
		// fall through to the success response
	case errors.As(err, &verr):
		invalid := make(map[string]bool, len(verr.Fields))
		for _, f := range verr.Fields {
			invalid[f.Field] = true
		}
		h.contactError(c, s, http.StatusUnprocessableEntity, fields, invalid, "")
		return
	case errors.Is(err, contact.ErrBusy):
		h.contactError(c, s, http.StatusConflict, fields, nil, "Your previous message is still being sent.")
		return
	default:
		h.log.Error("contact submission failed", zap.String("session", s.ID), zap.Error(err))
		h.contactError(c, s, http.StatusInternalServerError, fields, nil, "Something went wrong, please try again.")
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusAccepted, s.Snapshot())
		return
	}
	c.Redirect(http.StatusSeeOther, "/contact")
}

// contactError re-renders the form with the visitor's input kept
func (h *Handlers) contactError(c *gin.Context, s *session.Session, status int, fields contact.Fields, invalid map[string]bool, message string) {
	if wantsJSON(c) {
		names := make([]string, 0, len(invalid))
		for name := range invalid {
			names = append(names, name)
		}
		body := gin.H{"error": message, "invalid": names}
		if message == "" {
			body["error"] = "Please fill in the highlighted fields."
		}
		c.JSON(status, body)
		return
	}

	page, found := h.portfolio.Page("/contact")
	if !found {
		c.AbortWithStatus(status)
		return
	}

	if invalid == nil {
		invalid = map[string]bool{}
	}

	pv := h.newPageView(c, s, viewContact)
	pv.Page = page
	pv.Title = page.Title + " - " + h.portfolio.Site.SiteTitle
	pv.Description = page.Description
	pv.Contact = &contactView{
		Phase:   s.Contact.Phase(),
		Fields:  fields,
		Invalid: invalid,
		Error:   message,
	}
	h.render(c, status, pv)
}

// wantsJSON reports whether the caller is the page script rather than a
// plain form post
func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "application/json") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}
