package styles

import "sort"

// Palette defines a minimal semantic theme palette. Colors are hex strings so
// they can feed both lipgloss and go-colorful.
type Palette struct {
	Primary    string
	Secondary  string
	Foreground string
	Muted      string
	Background string
	Surface    string
	Success    string
	Warning    string
	Error      string
	// Tile is the colour of an untouched canvas tile; hovering darkens it.
	Tile string
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    "#7aa2f7",
		Secondary:  "#7dcfff",
		Foreground: "#c0caf5",
		Muted:      "#565f89",
		Background: "#1a1b26",
		Surface:    "#3b4261",
		Success:    "#9ece6a",
		Warning:    "#e0af68",
		Error:      "#f7768e",
		Tile:       "#e6e9f5",
	},
	"gruvbox": {
		Primary:    "#83a598",
		Secondary:  "#8ec07c",
		Foreground: "#ebdbb2",
		Muted:      "#665c54",
		Background: "#282828",
		Surface:    "#3c3836",
		Success:    "#b8bb26",
		Warning:    "#fabd2f",
		Error:      "#fb4934",
		Tile:       "#fbf1c7",
	},
	"catppuccin": {
		Primary:    "#89b4fa", // Blue
		Secondary:  "#94e2d5", // Teal
		Foreground: "#cdd6f4", // Text
		Muted:      "#6c7086", // Overlay0
		Background: "#1e1e2e", // Base
		Surface:    "#313244", // Surface0
		Success:    "#a6e3a1", // Green
		Warning:    "#f9e2af", // Yellow
		Error:      "#f38ba8", // Red
		Tile:       "#eff1f5", // Latte base
	},
	"paper": {
		Primary:    "#4c6ef5",
		Secondary:  "#15aabf",
		Foreground: "#212529",
		Muted:      "#868e96",
		Background: "#f8f9fa",
		Surface:    "#dee2e6",
		Success:    "#2b8a3e",
		Warning:    "#e67700",
		Error:      "#c92a2a",
		Tile:       "#ffffff",
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
