package themes

// Palette defines the base colors for a theme
type Palette struct {
	Name      string // "gold", "navy", etc.
	Primary   string // accent color #RRGGBB
	Secondary string // highlight color #RRGGBB
}

// DefaultPalette is used when the configured name is unknown
const DefaultPalette = "gold"

var palettes = map[string]*Palette{
	"gold": {
		Name:      "gold",
		Primary:   "#d4a017",
		Secondary: "#fde68a",
	},
	"amber": {
		Name:      "amber",
		Primary:   "#f59e0b",
		Secondary: "#fcd34d",
	},
	"navy": {
		Name:      "navy",
		Primary:   "#1e3a8a",
		Secondary: "#fbbf24",
	},
	"burgundy": {
		Name:      "burgundy",
		Primary:   "#881337",
		Secondary: "#fda4af",
	},
	"emerald": {
		Name:      "emerald",
		Primary:   "#059669",
		Secondary: "#f59e0b",
	},
	"slate": {
		Name:      "slate",
		Primary:   "#64748b",
		Secondary: "#0f172a",
	},
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	return palettes[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{"gold", "amber", "navy", "burgundy", "emerald", "slate"}
	var out []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}
