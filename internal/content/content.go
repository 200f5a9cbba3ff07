// SPDX-License-Identifier: MIT

// Package content loads the portfolio copy from the content store and
// pre-renders every page's blocks.
package content

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/temotunadze/lawfolio/internal/blocks"
	"github.com/temotunadze/lawfolio/internal/models"
	"github.com/temotunadze/lawfolio/internal/ui"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotSeeded is returned by Load when the store has no site profile
var ErrNotSeeded = errors.New("content store has not been seeded")

// RenderedPage is a page with its blocks already rendered to HTML
type RenderedPage struct {
	Slug        string
	Title       string
	Description string
	Sections    []template.HTML
}

// Portfolio is everything the templates need that does not depend on the visitor
type Portfolio struct {
	Site        models.Site
	NavLinks    []models.NavLink
	FooterLinks []models.NavLink
	Socials     []models.SocialLink
	pages       map[string]*RenderedPage
}

// Load reads the site, links and pages. A block that fails to render is
// logged and skipped so one bad row never takes a page down.
func Load(db *gorm.DB, log *zap.Logger) (*Portfolio, error) {
	if log == nil {
		log = zap.NewNop()
	}

	p := &Portfolio{pages: make(map[string]*RenderedPage)}

	if err := db.First(&p.Site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSeeded
		}
		return nil, fmt.Errorf("failed to load site profile: %w", err)
	}

	var links []models.NavLink
	if err := db.Order("`order` ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load nav links: %w", err)
	}
	for _, l := range links {
		switch l.Placement {
		case models.PlacementNavbar:
			p.NavLinks = append(p.NavLinks, l)
		case models.PlacementFooter:
			p.FooterLinks = append(p.FooterLinks, l)
		}
	}

	if err := db.Order("`order` ASC").Find(&p.Socials).Error; err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}

	pages, err := ListPages(db)
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		rp := &RenderedPage{Slug: page.Slug, Title: page.Title, Description: page.Description}
		for _, block := range page.Blocks {
			html, err := blocks.RenderBlock(block.Type, block.Data)
			if err != nil {
				log.Warn("skipping block that failed to render",
					zap.Uint("block_id", block.ID),
					zap.String("page", page.Slug),
					zap.Error(err),
				)
				continue
			}
			// Block output is escaped or sanitized by the renderer
			rp.Sections = append(rp.Sections, template.HTML(html))
		}
		p.pages[page.Slug] = rp
	}

	return p, nil
}

// ListPages returns every page with its blocks in display order
func ListPages(db *gorm.DB) ([]models.Page, error) {
	var pages []models.Page
	err := db.Preload("Blocks", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` ASC")
	}).Order("id ASC").Find(&pages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}
	return pages, nil
}

// Page returns the rendered page for slug
func (p *Portfolio) Page(slug string) (*RenderedPage, bool) {
	page, ok := p.pages[ui.NormalizeRoute(slug)]
	return page, ok
}

// Slugs lists the routable page paths
func (p *Portfolio) Slugs() []string {
	out := make([]string, 0, len(p.pages))
	for slug := range p.pages {
		out = append(out, slug)
	}
	return out
}

// NavbarLinks converts the navbar entries into navigation state links
func (p *Portfolio) NavbarLinks() []ui.Link {
	out := make([]ui.Link, len(p.NavLinks))
	for i, l := range p.NavLinks {
		out[i] = ui.Link{Label: l.Label, Href: l.Href}
	}
	return out
}
