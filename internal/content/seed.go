// SPDX-License-Identifier: MIT
package content

import (
	"encoding/json"
	"fmt"

	"github.com/temotunadze/lawfolio/internal/blocks"
	"github.com/temotunadze/lawfolio/internal/models"
	"gorm.io/gorm"
)

// defaultSite is the owner profile seeded on first start
var defaultSite = models.Site{
	SiteTitle:    "Law Portfolio",
	OwnerName:    "Temo Tunadze",
	Role:         "Law Student & Researcher",
	Institution:  "Tbilisi State University",
	Tagline:      "Pursuing justice through academic excellence at Tbilisi State University",
	FooterBlurb:  "A passionate law student at Tbilisi State University focusing on constitutional law, human rights advocacy, and legal research.",
	Location:     "Tbilisi, Georgia",
	ProfileImage: "/static/img/profile.jpg",
	HeroImage:    "/static/img/lawbg.jpg",
}

var defaultNavLinks = []models.NavLink{
	{Placement: models.PlacementNavbar, Label: "Home", Href: "/", Order: 1},
	{Placement: models.PlacementNavbar, Label: "About", Href: "/about", Order: 2},
	{Placement: models.PlacementNavbar, Label: "Contact", Href: "/contact", Order: 3},
	{Placement: models.PlacementFooter, Label: "Home", Href: "/", Order: 1},
	{Placement: models.PlacementFooter, Label: "About Me", Href: "/about", Order: 2},
	{Placement: models.PlacementFooter, Label: "Contact", Href: "/contact", Order: 3},
	{Placement: models.PlacementFooter, Label: "Privacy Policy", Href: "#", Order: 4},
	{Placement: models.PlacementFooter, Label: "Terms of Service", Href: "#", Order: 5},
}

var defaultSocialLinks = []models.SocialLink{
	{Label: "Facebook", URL: "https://www.facebook.com/temotunadze", BrandColor: "#1877F2", Order: 1},
	{Label: "Instagram", URL: "https://www.instagram.com/tunadzetemo/", BrandColor: "#E1306C", Order: 2},
	{Label: "LinkedIn", URL: "https://linkedin.com", BrandColor: "#0A66C2", Order: 3},
}

type seedBlock struct {
	kind string
	data interface{}
}

type seedPage struct {
	slug        string
	title       string
	description string
	blocks      []seedBlock
}

var defaultPages = []seedPage{
	{
		slug:        "/",
		title:       "Law Portfolio",
		description: "Portfolio of Temo Tunadze, law student at Tbilisi State University.",
		blocks: []seedBlock{
			{kind: "hero", data: blocks.HeroBlockData{
				Heading:    "Law Portfolio",
				Subheading: "Pursuing justice through academic excellence at Tbilisi State University",
				CTALabel:   "Explore My Journey",
				CTAHref:    "/about",
				Background: "/static/img/lawbg.jpg",
			}},
			{kind: "stats", data: blocks.StatsBlockData{
				Heading: "Why Choose Me?",
				Intro:   "With a strong legal background, professional ethics, and a passion for justice, I bring experience in advocacy, legal research, and human rights law.",
				Items: []blocks.Stat{
					{Icon: "gavel", Value: "15+", Label: "Mock Trials & Moot Court Cases"},
					{Icon: "scale", Value: "3.9 GPA", Label: "Academic Excellence in Law"},
					{Icon: "trophy", Value: "5", Label: "Legal Research Papers Published"},
					{Icon: "users", Value: "100+", Label: "Networking & Legal Community Connections"},
				},
			}},
		},
	},
	{
		slug:        "/about",
		title:       "About Me",
		description: "Background, areas of expertise and milestones.",
		blocks: []seedBlock{
			{kind: "stats", data: blocks.StatsBlockData{
				Compact: true,
				Items: []blocks.Stat{
					{Icon: "gavel", Value: "15+", Label: "Moot Court Cases"},
					{Icon: "scale", Value: "3.9", Label: "GPA"},
					{Icon: "book", Value: "5+", Label: "Published Papers"},
				},
			}},
			{kind: "markdown", data: blocks.TextBlockData{Content: "As a passionate law student at Tbilisi State University, I focus on constitutional law, human rights advocacy, and legal research. " +
				"My mission is to bridge theoretical knowledge with real-world legal applications, ensuring justice and fairness in society.\n\n" +
				"With a deep understanding of the legal system, I have worked on **moot court cases, legal research papers, and pro bono consulting**. " +
				"My experience extends to **human rights law, international law, and legal writing**."}},
			{kind: "skills", data: blocks.SkillsBlockData{
				Heading: "Areas of Expertise",
				Items: []blocks.Skill{
					{Icon: "gavel", Text: "Civil Litigation"},
					{Icon: "graduate", Text: "Constitutional Law"},
					{Icon: "lightbulb", Text: "Legal Research"},
					{Icon: "scale", Text: "Human Rights Law"},
					{Icon: "university", Text: "Legal Writing"},
					{Icon: "globe", Text: "International Law"},
				},
			}},
			{kind: "timeline", data: blocks.TimelineBlockData{
				Heading: "Key Milestones",
				Items: []blocks.Milestone{
					{Year: "2023", Title: "National Moot Court Competition", Description: "Finalist in the Constitutional Law division representing Tbilisi State University"},
					{Year: "2022", Title: "Legal Research Publication", Description: "Co-authored paper on 'Digital Rights and Constitutional Protections in Georgia'"},
					{Year: "2021", Title: "Human Rights Center Internship", Description: "Assisted with case research and documentation for asylum seekers"},
				},
			}},
		},
	},
	{
		slug:        "/contact",
		title:       "Get in Touch",
		description: "Send a message about research, moot court or opportunities.",
	},
}

// Seed inserts the default portfolio content when the store is empty. It
// reports whether anything was written.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Page{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count pages: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		site := defaultSite
		if err := tx.Create(&site).Error; err != nil {
			return fmt.Errorf("failed to create site profile: %w", err)
		}

		links := append([]models.NavLink(nil), defaultNavLinks...)
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to create nav links: %w", err)
		}

		socials := append([]models.SocialLink(nil), defaultSocialLinks...)
		if err := tx.Create(&socials).Error; err != nil {
			return fmt.Errorf("failed to create social links: %w", err)
		}

		for _, sp := range defaultPages {
			page := models.Page{Slug: sp.slug, Title: sp.title, Description: sp.description}
			for i, sb := range sp.blocks {
				data, err := json.Marshal(sb.data)
				if err != nil {
					return fmt.Errorf("failed to encode %s block for %s: %w", sb.kind, sp.slug, err)
				}
				page.Blocks = append(page.Blocks, models.Block{Type: sb.kind, Order: i + 1, Data: string(data)})
			}
			if err := tx.Create(&page).Error; err != nil {
				return fmt.Errorf("failed to create page %s: %w", sp.slug, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
