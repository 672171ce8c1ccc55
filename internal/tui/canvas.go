package tui

import (
	"math"
	"strings"

	"github.com/colonyops/sketchgrid/internal/core/grid"
	"github.com/colonyops/sketchgrid/internal/core/styles"
)

// Canvas mirrors the grid as rendered terminal cells. It implements
// grid.Surface; tile sizes come from each tile's basis share of the canvas
// width.
type Canvas struct {
	width int

	basis        string
	size         int
	cellW, cellH int

	brightness []float64
	cells      []string
	cache      map[float64]string
}

// NewCanvas creates an empty canvas width terminal cells wide.
func NewCanvas(width int) *Canvas {
	return &Canvas{
		width: max(width, 1),
		cache: make(map[float64]string),
	}
}

// Reset implements grid.Surface.
func (c *Canvas) Reset() {
	c.basis = ""
	c.size = 0
	c.brightness = c.brightness[:0]
	c.cells = c.cells[:0]
}

// Append implements grid.Surface.
func (c *Canvas) Append(index int, t grid.Tile) {
	if index == 0 || t.Basis != c.basis {
		c.layout(t.Basis)
	}
	c.brightness = append(c.brightness, t.Brightness)
	c.cells = append(c.cells, c.render(t.Brightness))
}

// Update implements grid.Surface.
func (c *Canvas) Update(index int, t grid.Tile) {
	if index < 0 || index >= len(c.cells) {
		return
	}
	c.brightness[index] = t.Brightness
	c.cells[index] = c.render(t.Brightness)
}

// Len returns the number of tiles on the canvas.
func (c *Canvas) Len() int {
	return len(c.cells)
}

// CellSize returns the width and height of one tile in terminal cells.
func (c *Canvas) CellSize() (int, int) {
	return c.cellW, c.cellH
}

// SetWidth changes the canvas width and lays the tiles out again.
func (c *Canvas) SetWidth(width int) {
	width = max(width, 1)
	if width == c.width {
		return
	}
	c.width = width
	if c.basis != "" {
		c.layout(c.basis)
		c.Restyle()
	}
}

// Restyle re-renders every tile, e.g. after a theme change.
func (c *Canvas) Restyle() {
	clear(c.cache)
	for i, b := range c.brightness {
		c.cells[i] = c.render(b)
	}
}

// HitTest maps a point relative to the canvas origin to a tile index.
func (c *Canvas) HitTest(x, y int) (int, bool) {
	if c.size == 0 || x < 0 || y < 0 {
		return 0, false
	}

	col, row := x/c.cellW, y/c.cellH
	if col >= c.size || row >= c.size {
		return 0, false
	}

	idx := row*c.size + col
	if idx >= len(c.cells) {
		return 0, false
	}
	return idx, true
}

// View renders the tiles row by row.
func (c *Canvas) View() string {
	if c.size == 0 || len(c.cells) == 0 {
		return ""
	}

	var b strings.Builder
	for start := 0; start < len(c.cells); start += c.size {
		end := min(start+c.size, len(c.cells))
		row := strings.Join(c.cells[start:end], "")
		for range c.cellH {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(row)
		}
	}
	return b.String()
}

func (c *Canvas) layout(basis string) {
	frac, ok := grid.BasisFraction(basis)
	if !ok {
		frac = 1
	}

	c.basis = basis
	c.size = max(int(math.Round(1/frac)), 1)
	cellW := max(int(float64(c.width)*frac), 1)
	if cellW != c.cellW {
		clear(c.cache)
	}
	c.cellW = cellW
	// Terminal cells are roughly twice as tall as they are wide.
	c.cellH = max(c.cellW/2, 1)
}

func (c *Canvas) render(brightness float64) string {
	if s, ok := c.cache[brightness]; ok {
		return s
	}
	s := styles.TileStyle(brightness).Render(strings.Repeat(" ", c.cellW))
	c.cache[brightness] = s
	return s
}
