package themes

import (
	"strconv"
	"strings"
)

// Colors represents all generated colors for a theme
type Colors struct {
	Primary         string // Accent color
	PrimaryContrast string // Text drawn on top of the accent
	Secondary       string // Gradient highlight
	Background      string // Page background
	Surface         string // Card background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string
	Error           string
}

// GenerateColors generates full color set from palette for light or dark mode
func GenerateColors(palette *Palette, darkMode bool) *Colors {
	if darkMode {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: contrastText(palette.Primary),
		Secondary:       palette.Secondary,
		Background:      "#ffffff",
		Surface:         "#f9fafb",
		Text:            "#111827",
		TextMuted:       "#6b7280",
		Border:          "#e5e7eb",
		Success:         "#16a34a",
		Error:           "#dc2626",
	}
}

// generateDarkColors matches the gray-900 look of the site
func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: contrastText(palette.Primary),
		Secondary:       palette.Secondary,
		Background:      "#111827",
		Surface:         "#1f2937",
		Text:            "#f3f4f6",
		TextMuted:       "#9ca3af",
		Border:          "#374151",
		Success:         "#22c55e",
		Error:           "#ef4444",
	}
}

// contrastText picks near-black or white for text on top of hex
func contrastText(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "#111827"
	}
	// Perceived brightness, ITU-R BT.601 weights
	if (299*r+587*g+114*b)/1000 >= 140 {
		return "#111827"
	}
	return "#ffffff"
}

func parseHex(hex string) (int, int, int, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = strings.Repeat(hex[0:1], 2) + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2)
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
