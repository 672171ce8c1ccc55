package grid

import (
	"math"
	"strconv"
	"strings"
)

// Tile is one cell of the drawing grid.
type Tile struct {
	// Brightness is the tile's filter value, 1 is untouched.
	Brightness float64
	// Basis is the tile's share of the container's main axis, e.g. "10%".
	Basis string
}

func newTile(basis string) Tile {
	return Tile{Brightness: 1, Basis: basis}
}

// Basis returns the layout share of one tile in a grid of the given size.
func Basis(size int) string {
	return strconv.FormatFloat(100/float64(size), 'f', -1, 64) + "%"
}

// BasisFraction parses a basis string back into a fraction of 1.
func BasisFraction(basis string) (float64, bool) {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(basis, "%"), 64)
	if err != nil || pct <= 0 {
		return 0, false
	}
	return pct / 100, true
}

// dim lowers brightness by step, never below floor. A tile already at or
// below floor is returned unchanged, so raising the floor never brightens it.
// The result is rounded so repeated 0.1 steps land on exact decimals.
func dim(brightness, step, floor float64) float64 {
	if brightness <= floor {
		return brightness
	}
	b := math.Round((brightness-step)*1e9) / 1e9
	if b < floor {
		return floor
	}
	return b
}
