// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/temotunadze/lawfolio/internal/models"
)

func TestOpenMigratesSchema(t *testing.T) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, model := range models.All() {
		if !conn.Migrator().HasTable(model) {
			t.Errorf("table for %T not created", model)
		}
	}

	if !conn.Migrator().HasColumn(&models.Block{}, "data") {
		t.Fatal("data column not found in blocks table")
	}
}

func TestInitDBFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer SetDB(nil)

	if GetDB() == nil {
		t.Fatal("GetDB returned nil after InitDB")
	}
	if err := GetDB().Create(&models.Page{Slug: "/", Title: "Home"}).Error; err != nil {
		t.Errorf("failed to write to file database: %v", err)
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open("postgres", "whatever"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
