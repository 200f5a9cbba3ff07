package themes

import (
	"strings"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette(DefaultPalette)
	if palette == nil {
		t.Fatal("default palette not found")
	}
}

func TestGenerateLightModeColors(t *testing.T) {
	palette := GetPalette("navy")
	colors := GenerateColors(palette, false)

	if colors.Primary != palette.Primary {
		t.Errorf("expected primary %s, got %s", palette.Primary, colors.Primary)
	}
	if colors.Background != "#ffffff" {
		t.Errorf("expected white background, got %s", colors.Background)
	}
}

func TestGenerateDarkModeColors(t *testing.T) {
	palette := GetPalette("gold")
	colors := GenerateColors(palette, true)

	if colors.Primary != palette.Primary {
		t.Error("dark mode should keep the accent color")
	}
	if colors.Background != "#111827" {
		t.Errorf("expected gray-900 background, got %s", colors.Background)
	}
}

func TestContrastText(t *testing.T) {
	tests := map[string]string{
		"#d4a017": "#111827", // gold reads best with dark text
		"#1e3a8a": "#ffffff", // navy needs white
		"#fff":    "#111827",
		"bogus":   "#111827",
	}
	for in, want := range tests {
		if got := contrastText(in); got != want {
			t.Errorf("contrastText(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) != 6 {
		t.Errorf("expected 6 palettes, got %d", len(palettes))
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range ListPalettes() {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestGeneratedColorsAreHex(t *testing.T) {
	for _, palette := range ListPalettes() {
		colors := GenerateColors(palette, false)

		colorMap := map[string]string{
			"Primary":         colors.Primary,
			"PrimaryContrast": colors.PrimaryContrast,
			"Secondary":       colors.Secondary,
			"Background":      colors.Background,
			"Text":            colors.Text,
		}

		for name, color := range colorMap {
			if !strings.HasPrefix(color, "#") || (len(color) != 7 && len(color) != 4) {
				t.Errorf("%s/%s invalid hex: %s", palette.Name, name, color)
			}
		}
	}
}
