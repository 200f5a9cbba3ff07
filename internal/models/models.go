package models

import (
	"time"

	"gorm.io/gorm"
)

// Site holds the portfolio owner's profile shown across every page
type Site struct {
	ID           uint   `gorm:"primaryKey"`
	SiteTitle    string `gorm:"not null"`
	OwnerName    string `gorm:"not null"`
	Role         string
	Institution  string
	Tagline      string
	FooterBlurb  string `gorm:"type:text"`
	Location     string
	ProfileImage string
	HeroImage    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Page represents a routed page of the portfolio
type Page struct {
	ID          uint           `gorm:"primaryKey"`
	Slug        string         `gorm:"uniqueIndex;not null"` // URL path, "/" for home
	Title       string         `gorm:"not null"`
	Description string         // meta description
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relationships
	Blocks []Block `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
}

// Block represents a content section on a page
type Block struct {
	ID        uint   `gorm:"primaryKey"`
	PageID    uint   `gorm:"not null;index"`
	Type      string `gorm:"not null"` // "hero", "text", "markdown", "stats", "skills", "timeline"
	Order     int    `gorm:"not null"` // Display order on page
	Data      string `gorm:"type:text"` // JSON payload for the block type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NavLink placements
const (
	PlacementNavbar = "navbar"
	PlacementFooter = "footer"
)

// NavLink is an entry in the navbar or the footer's quick links
type NavLink struct {
	ID        uint   `gorm:"primaryKey"`
	Placement string `gorm:"not null;index"`
	Label     string `gorm:"not null"`
	Href      string `gorm:"not null"`
	Order     int    `gorm:"not null"`
}

// SocialLink is an external profile link
type SocialLink struct {
	ID         uint   `gorm:"primaryKey"`
	Label      string `gorm:"not null"`
	URL        string `gorm:"not null"`
	BrandColor string // hover color, #RRGGBB
	Order      int    `gorm:"not null"`
}

// TableName overrides for consistent naming
func (Site) TableName() string {
	return "site"
}

func (Page) TableName() string {
	return "pages"
}

func (Block) TableName() string {
	return "blocks"
}

func (NavLink) TableName() string {
	return "nav_links"
}

func (SocialLink) TableName() string {
	return "social_links"
}

// All lists every model for migrations
func All() []interface{} {
	return []interface{}{&Site{}, &Page{}, &Block{}, &NavLink{}, &SocialLink{}}
}
