// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGeneratedCSSContainsVariables(t *testing.T) {
	css := GenerateCSS(GenerateColors(GetPalette("gold"), true))

	expectedVars := []string{
		"--color-accent",
		"--color-accent-contrast",
		"--color-secondary",
		"--color-bg",
		"--color-surface",
		"--color-text",
		"--color-text-muted",
		"--color-border",
		"--color-error",
	}

	for _, variable := range expectedVars {
		if !strings.Contains(css, variable) {
			t.Errorf("CSS missing variable: %s", variable)
		}
	}
	if strings.Contains(css, "%!") {
		t.Errorf("CSS has a formatting error: %s", css)
	}
}

func TestGeneratedCSSContainsHexValues(t *testing.T) {
	colors := GenerateColors(GetPalette("burgundy"), false)
	css := GenerateCSS(colors)

	if !strings.Contains(css, colors.Primary) {
		t.Errorf("CSS does not contain primary color: %s", colors.Primary)
	}
	if !strings.Contains(css, colors.Background) {
		t.Errorf("CSS does not contain background color: %s", colors.Background)
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	if Stylesheet("navy", false) == Stylesheet("navy", true) {
		t.Fatal("Light and dark CSS should be different")
	}
}

func TestStylesheetFallsBackToDefault(t *testing.T) {
	if Stylesheet("no-such-palette", true) != Stylesheet(DefaultPalette, true) {
		t.Error("unknown palette should fall back to the default")
	}
}
