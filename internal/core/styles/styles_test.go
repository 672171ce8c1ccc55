package styles

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_AllResolvable(t *testing.T) {
	names := ThemeNames()
	require.Contains(t, names, DefaultTheme)

	for _, name := range names {
		p, ok := GetPalette(name)
		require.True(t, ok, name)

		for _, hex := range []string{p.Primary, p.Foreground, p.Background, p.Tile} {
			_, err := colorful.Hex(hex)
			assert.NoError(t, err, "theme %s colour %q", name, hex)
		}
	}
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("nope")
	assert.False(t, ok)
}

func TestTileColor(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	SetTheme(Palette{Tile: "#ffffff"})

	assert.Equal(t, "#ffffff", TileColor(1))
	assert.Equal(t, "#000000", TileColor(0))
	assert.Equal(t, "#000000", TileColor(-0.5), "clamped below zero")
	assert.Equal(t, "#ffffff", TileColor(3), "clamped above one")

	half, err := colorful.Hex(TileColor(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half.R, 0.01)
}

func TestTileColor_Monotonic(t *testing.T) {
	prev := 2.0
	for b := 1.0; b >= 0; b -= 0.1 {
		c, err := colorful.Hex(TileColor(b))
		require.NoError(t, err)
		_, _, l := c.Hsl()
		assert.Less(t, l, prev+1e-9, "darker at brightness %.1f", b)
		prev = l
	}
}

func TestSetTheme_RebuildsStyles(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Primary, string(ColorPrimary))
}
