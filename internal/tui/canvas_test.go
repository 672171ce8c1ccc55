package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/sketchgrid/internal/core/grid"
	"github.com/colonyops/sketchgrid/pkg/tuitest"
)

func fillCanvas(c *Canvas, size int) {
	c.Reset()
	basis := grid.Basis(size)
	for i := range size * size {
		c.Append(i, grid.Tile{Brightness: 1, Basis: basis})
	}
}

func TestCanvas_Layout(t *testing.T) {
	tests := []struct {
		name         string
		width, size  int
		wantW, wantH int
	}{
		{name: "even split", width: 64, size: 4, wantW: 16, wantH: 8},
		{name: "narrow tiles", width: 64, size: 32, wantW: 2, wantH: 1},
		{name: "more tiles than columns", width: 10, size: 40, wantW: 1, wantH: 1},
		{name: "single tile", width: 20, size: 1, wantW: 20, wantH: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.width)
			fillCanvas(c, tt.size)

			w, h := c.CellSize()
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.size*tt.size, c.Len())
		})
	}
}

func TestCanvas_View(t *testing.T) {
	c := NewCanvas(8)
	assert.Empty(t, c.View())

	fillCanvas(c, 2)

	lines := strings.Split(c.View(), "\n")
	// 2 rows of tiles, each 2 terminal rows tall.
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 8, len(stripPlain(l)))
	}
}

// stripPlain strips styling but keeps the spaces that make up a tile.
func stripPlain(s string) string {
	return strings.ReplaceAll(tuitest.StripANSI("|"+s+"|"), "|", "")
}

func TestCanvas_HitTest(t *testing.T) {
	c := NewCanvas(8)
	fillCanvas(c, 2) // cells are 4 wide, 2 tall

	tests := []struct {
		name    string
		x, y    int
		want    int
		wantHit bool
	}{
		{name: "top left", x: 0, y: 0, want: 0, wantHit: true},
		{name: "top right", x: 7, y: 1, want: 1, wantHit: true},
		{name: "bottom left", x: 3, y: 2, want: 2, wantHit: true},
		{name: "bottom right", x: 4, y: 3, want: 3, wantHit: true},
		{name: "right of canvas", x: 8, y: 0},
		{name: "below canvas", x: 0, y: 4},
		{name: "negative", x: -1, y: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.HitTest(tt.x, tt.y)
			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCanvas_HitTest_Empty(t *testing.T) {
	c := NewCanvas(8)
	_, ok := c.HitTest(0, 0)
	assert.False(t, ok)
}

func TestCanvas_UpdateAndReset(t *testing.T) {
	c := NewCanvas(8)
	fillCanvas(c, 2)

	c.Update(1, grid.Tile{Brightness: 0.5, Basis: grid.Basis(2)})
	assert.InDelta(t, 0.5, c.brightness[1], 1e-12)
	assert.InDelta(t, 1.0, c.brightness[0], 1e-12)

	c.Update(99, grid.Tile{Brightness: 0})
	assert.Equal(t, 4, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.View())
}

func TestCanvas_SetWidth(t *testing.T) {
	c := NewCanvas(8)
	fillCanvas(c, 2)

	c.SetWidth(16)
	w, h := c.CellSize()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)

	idx, ok := c.HitTest(9, 5)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}
