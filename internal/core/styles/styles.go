// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"math"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// TUI shared styles.
	TitleStyle               lipgloss.Style
	StatusStyle              lipgloss.Style
	StatusErrorStyle         lipgloss.Style
	InputPromptStyle         lipgloss.Style
	ModalStyle               lipgloss.Style
	ModalClosingStyle        lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = lipgloss.Color(p.Primary)
	ColorSecondary = lipgloss.Color(p.Secondary)
	ColorForeground = lipgloss.Color(p.Foreground)
	ColorMuted = lipgloss.Color(p.Muted)
	ColorBackground = lipgloss.Color(p.Background)
	ColorSurface = lipgloss.Color(p.Surface)
	ColorSuccess = lipgloss.Color(p.Success)
	ColorWarning = lipgloss.Color(p.Warning)
	ColorError = lipgloss.Color(p.Error)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	InputPromptStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(1, 2)
	ModalClosingStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Foreground(ColorMuted).
		Faint(true).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarning)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// TileColor returns the hex colour of a tile at the given brightness, the
// palette's tile colour blended toward black like a CSS brightness filter.
func TileColor(brightness float64) string {
	base, err := colorful.Hex(CurrentPalette.Tile)
	if err != nil {
		base = colorful.Color{R: 1, G: 1, B: 1}
	}

	b := math.Max(0, math.Min(1, brightness))
	dimmed := colorful.Color{
		R: base.R * b,
		G: base.G * b,
		B: base.B * b,
	}
	return dimmed.Clamped().Hex()
}

// TileStyle returns the style for a tile cell at the given brightness.
func TileStyle(brightness float64) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(TileColor(brightness)))
}

func hexPtr(hex string) *string {
	if hex == "" {
		return nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil
	}
	out := c.Hex()
	return &out
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := hexPtr(CurrentPalette.Foreground)
	primary := hexPtr(CurrentPalette.Primary)
	secondary := hexPtr(CurrentPalette.Secondary)
	muted := hexPtr(CurrentPalette.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.Strong.Color = secondary

	return cfg
}
