// SPDX-License-Identifier: MIT
package themes

import "fmt"

// GenerateCSS generates CSS with color variables from colors struct. Layout
// rules live in the static stylesheet and only reference these variables.
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-accent: %s;
  --color-accent-contrast: %s;
  --color-accent-soft: color-mix(in srgb, var(--color-accent) 15%%, transparent);
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
}

a {
  color: var(--color-accent);
}

.btn-accent {
  background-color: var(--color-accent);
  color: var(--color-accent-contrast);
}

input:invalid[data-touched], textarea:invalid[data-touched], .field-invalid {
  border-color: var(--color-error);
}

.success { color: var(--color-success); }
.error { color: var(--color-error); }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error)
}

// Stylesheet resolves a palette by name, falling back to the default, and
// returns the generated CSS
func Stylesheet(paletteName string, darkMode bool) string {
	palette := GetPalette(paletteName)
	if palette == nil {
		palette = GetPalette(DefaultPalette)
	}
	return GenerateCSS(GenerateColors(palette, darkMode))
}
