// SPDX-License-Identifier: MIT
package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/content"
	"github.com/temotunadze/lawfolio/internal/middleware"
	"github.com/temotunadze/lawfolio/internal/models"
	"github.com/temotunadze/lawfolio/internal/session"
	"github.com/temotunadze/lawfolio/internal/ui"
	"go.uber.org/zap"
)

const (
	viewPage     = "page"
	viewContact  = "contact"
	viewNotFound = "notfound"
)

// pageView is the data behind every rendered page
type pageView struct {
	View        string
	Title       string
	Description string
	Site        models.Site
	Page        *content.RenderedPage
	Nav         ui.NavSnapshot
	FooterLinks []ui.Link
	Socials     []models.SocialLink
	Year        int
	CSRF        string
	// Refresh re-polls the page while a submission is in flight for
	// visitors without scripts
	Refresh       int
	ShowScrollTop bool
	Contact       *contactView
	Newsletter    string

	NavThreshold    int
	ScrollThreshold int
	Breakpoint      int
}

type contactView struct {
	Phase   contact.Phase
	Fields  contact.Fields
	Invalid map[string]bool
	Error   string
}

// newPageView fills the layout data shared by every page
func (h *Handlers) newPageView(c *gin.Context, s *session.Session, view string) *pageView {
	snap := s.Snapshot()

	pv := &pageView{
		View:            view,
		Title:           h.portfolio.Site.SiteTitle,
		Site:            h.portfolio.Site,
		Nav:             snap.Nav,
		FooterLinks:     footerLinks(s, h.portfolio.FooterLinks),
		Socials:         h.portfolio.Socials,
		Year:            time.Now().Year(),
		CSRF:            middleware.GetCSRFToken(c),
		ShowScrollTop:   snap.ShowScrollTop,
		NavThreshold:    s.Nav.ScrollThreshold(),
		ScrollThreshold: s.Footer.Threshold(),
		Breakpoint:      s.Nav.Breakpoint(),
	}

	switch c.Query("newsletter") {
	case "subscribed":
		pv.Newsletter = "Thanks for subscribing!"
	case "invalid":
		pv.Newsletter = "Please enter a valid email address."
	}
	return pv
}

// footerLinks marks the quick link for the current route. Anchors and
// external links are never active.
func footerLinks(s *session.Session, links []models.NavLink) []ui.Link {
	out := make([]ui.Link, len(links))
	for i, l := range links {
		out[i] = ui.Link{Label: l.Label, Href: l.Href, Active: s.Nav.IsActive(l.Href)}
	}
	return out
}

// render executes the layout into a buffer so a template error never leaves
// a half-written response
func (h *Handlers) render(c *gin.Context, status int, pv *pageView) {
	var buf bytes.Buffer
	if err := layoutTemplate.ExecuteTemplate(&buf, "layout", pv); err != nil {
		h.log.Error("failed to render page", zap.String("view", pv.View), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

var layoutTemplate = template.Must(template.New("layout").Parse(`
{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>{{.Title}}</title>
	{{with .Description}}<meta name="description" content="{{.}}">{{end}}
	<meta name="csrf-token" content="{{.CSRF}}">
	{{if .Refresh}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
	<link rel="icon" href="/favicon.ico">
	<link rel="stylesheet" href="/theme.css">
	<link rel="stylesheet" href="/static/site.css">
	<script src="/static/app.js" defer></script>
</head>
<body id="top" data-route="{{.Nav.ActiveRoute}}" data-nav-threshold="{{.NavThreshold}}" data-scroll-threshold="{{.ScrollThreshold}}" data-breakpoint="{{.Breakpoint}}">
{{template "navbar" .}}
<main id="main">
{{if eq .View "contact"}}{{template "contact" .}}{{else if eq .View "notfound"}}{{template "notfound" .}}{{else}}{{range .Page.Sections}}{{.}}
{{end}}{{end}}
</main>
{{template "footer" .}}
</body>
</html>
{{end}}

{{define "navbar"}}<nav id="navbar" class="navbar{{if .Nav.Scrolled}} scrolled{{end}}{{if .Nav.MenuOpen}} menu-open{{end}}">
	<div class="navbar-inner">
		<a href="/" class="brand" data-nav>{{.Site.SiteTitle}}</a>
		<div class="nav-links">
			{{range .Nav.Links}}<a href="{{.Href}}" data-nav{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
			{{end}}
		</div>
		<form method="post" action="/ui/menu" class="menu-toggle-form">
			<input type="hidden" name="csrf_token" value="{{.CSRF}}">
			<input type="hidden" name="return" value="{{.Nav.ActiveRoute}}">
			<button type="submit" class="menu-toggle" aria-label="Toggle menu" aria-controls="mobile-menu" aria-expanded="{{.Nav.MenuOpen}}">
				<svg width="24" height="24" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"/></svg>
			</button>
		</form>
	</div>
	<div id="mobile-menu" class="mobile-menu"{{if not .Nav.MenuOpen}} hidden{{end}}>
		{{range .Nav.Links}}<a href="{{.Href}}" data-nav data-close-menu{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
		{{end}}
	</div>
</nav>{{end}}

{{define "footer"}}<footer class="site-footer">
	<div class="footer-grid">
		<div class="footer-about">
			<a href="/" class="brand" data-nav><span class="icon icon-gavel" aria-hidden="true"></span>{{.Site.SiteTitle}}</a>
			<p>{{.Site.FooterBlurb}}</p>
			<div class="socials">
				{{range .Socials}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" aria-label="{{.Label}}" class="social" style="--brand: {{.BrandColor}}">{{.Label}}</a>
				{{end}}
			</div>
		</div>
		<div class="footer-links">
			<h3>Quick Links</h3>
			<ul>
				{{range .FooterLinks}}<li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a></li>
				{{end}}
			</ul>
		</div>
		<div class="footer-newsletter" id="newsletter">
			<h3>Stay Updated</h3>
			<p>Subscribe to receive updates on legal research, events, and opportunities.</p>
			<form method="post" action="/subscribe" class="newsletter-form">
				<input type="hidden" name="csrf_token" value="{{.CSRF}}">
				<input type="hidden" name="return" value="{{.Nav.ActiveRoute}}">
				<input type="email" name="email" placeholder="Your email" aria-label="Your email" required>
				<button type="submit" class="btn-accent" aria-label="Subscribe"><span class="icon icon-envelope" aria-hidden="true"></span></button>
			</form>
			{{with .Newsletter}}<p class="newsletter-status" role="status">{{.}}</p>{{end}}
		</div>
	</div>
	<div class="footer-divider"></div>
	<div class="footer-bottom">
		<p>&copy; {{.Year}} {{.Site.SiteTitle}}. All rights reserved.</p>
		{{with .Site.Location}}<p>Made with <span class="heart">&hearts;</span> in {{.}}</p>{{end}}
	</div>
	<a href="#top" id="scroll-top" class="scroll-top{{if .ShowScrollTop}} visible{{end}}" aria-label="Scroll to top"><span class="icon icon-arrow-up" aria-hidden="true"></span></a>
</footer>{{end}}

{{define "contact"}}<section class="contact">
	<h2 class="section-title">{{.Page.Title}}</h2>
	{{range .Page.Sections}}{{.}}
	{{end}}
	<div id="contact-card" class="contact-card" data-phase="{{.Contact.Phase}}">
		<div class="contact-thanks" role="status"{{if ne .Contact.Phase "submitted"}} hidden{{end}}>
			<h3>Thank you for getting in touch!</h3>
			<p>Your message has been received. I will reply as soon as I can.</p>
		</div>
		<form method="post" action="/contact" id="contact-form"{{if eq .Contact.Phase "submitted"}} hidden{{end}}>
			<input type="hidden" name="csrf_token" value="{{.CSRF}}">
			{{with .Contact.Error}}<p class="form-error error" role="alert">{{.}}</p>{{end}}
			<fieldset{{if eq .Contact.Phase "submitting"}} disabled{{end}}>
				<div class="field">
					<label for="name">Name</label>
					<input type="text" id="name" name="name" value="{{.Contact.Fields.Name}}" required{{if index .Contact.Invalid "name"}} class="field-invalid" aria-invalid="true"{{end}}>
					{{if index .Contact.Invalid "name"}}<p class="field-error error">Please enter your name.</p>{{end}}
				</div>
				<div class="field">
					<label for="email">Email</label>
					<input type="email" id="email" name="email" value="{{.Contact.Fields.Email}}" required{{if index .Contact.Invalid "email"}} class="field-invalid" aria-invalid="true"{{end}}>
					{{if index .Contact.Invalid "email"}}<p class="field-error error">Please enter a valid email address.</p>{{end}}
				</div>
				<div class="field">
					<label for="subject">Subject</label>
					<input type="text" id="subject" name="subject" value="{{.Contact.Fields.Subject}}">
				</div>
				<div class="field">
					<label for="message">Message</label>
					<textarea id="message" name="message" rows="5" required{{if index .Contact.Invalid "message"}} class="field-invalid" aria-invalid="true"{{end}}>{{.Contact.Fields.Message}}</textarea>
					{{if index .Contact.Invalid "message"}}<p class="field-error error">Please enter a message.</p>{{end}}
				</div>
				<button type="submit" class="btn-accent submit">{{if eq .Contact.Phase "submitting"}}Sending&hellip;{{else}}Send Message{{end}}</button>
			</fieldset>
		</form>
	</div>
</section>{{end}}

{{define "notfound"}}<section class="not-found">
	<h1>404</h1>
	<h2>Page Not Found</h2>
	<p>The page you're looking for doesn't exist.</p>
	<div class="links">
		<a href="/" data-nav>&larr; Home</a>
		<a href="/contact" data-nav>Contact</a>
	</div>
</section>{{end}}
`))
