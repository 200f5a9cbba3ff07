package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/temotunadze/lawfolio/internal/db"
	"github.com/temotunadze/lawfolio/internal/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return conn
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := setupTestDB(t)

	wrote, err := Seed(conn)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if !wrote {
		t.Error("first Seed should write content")
	}

	wrote, err = Seed(conn)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if wrote {
		t.Error("second Seed should be a no-op")
	}

	var pages int64
	conn.Model(&models.Page{}).Count(&pages)
	if pages != 3 {
		t.Errorf("expected 3 pages, got %d", pages)
	}
}

func TestLoadPortfolio(t *testing.T) {
	conn := setupTestDB(t)
	if _, err := Seed(conn); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	p, err := Load(conn, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.Site.OwnerName != "Temo Tunadze" {
		t.Errorf("unexpected owner: %s", p.Site.OwnerName)
	}

	nav := p.NavbarLinks()
	if len(nav) != 3 || nav[0].Href != "/" || nav[1].Href != "/about" || nav[2].Href != "/contact" {
		t.Errorf("unexpected navbar links: %+v", nav)
	}
	if len(p.FooterLinks) != 5 {
		t.Errorf("expected 5 footer links, got %d", len(p.FooterLinks))
	}
	if len(p.Socials) != 3 {
		t.Errorf("expected 3 social links, got %d", len(p.Socials))
	}

	about, ok := p.Page("/about/")
	if !ok {
		t.Fatal("about page missing")
	}
	joined := ""
	for _, s := range about.Sections {
		joined += string(s)
	}
	for _, want := range []string{"Areas of Expertise", "Key Milestones", "<strong>", "Civil Litigation"} {
		if !strings.Contains(joined, want) {
			t.Errorf("about page missing %q", want)
		}
	}

	if _, ok := p.Page("/missing"); ok {
		t.Error("unexpected page for unknown slug")
	}
}

func TestLoadSkipsBrokenBlocks(t *testing.T) {
	conn := setupTestDB(t)
	if _, err := Seed(conn); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var home models.Page
	conn.Where("slug = ?", "/").First(&home)
	conn.Create(&models.Block{PageID: home.ID, Type: "carousel", Order: 99, Data: `{}`})

	p, err := Load(conn, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	page, _ := p.Page("/")
	if len(page.Sections) != 2 {
		t.Errorf("expected the unknown block to be skipped, got %d sections", len(page.Sections))
	}
}

func TestLoadUnseeded(t *testing.T) {
	conn := setupTestDB(t)

	if _, err := Load(conn, nil); !errors.Is(err, ErrNotSeeded) {
		t.Errorf("expected ErrNotSeeded, got %v", err)
	}
}
