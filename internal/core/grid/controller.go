// Package grid owns the drawing grid: tile creation and removal, hover
// dimming, and the fill/reset requests that may need user confirmation.
package grid

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/sketchgrid/internal/core/prompt"
)

var (
	// ErrInvalidSize is returned when a fill is requested for a size below 1.
	ErrInvalidSize = errors.New("grid size must be at least 1")
	// ErrSizeTooLarge is returned when a fill is requested above Options.MaxSize.
	ErrSizeTooLarge = errors.New("grid size exceeds maximum")
)

const (
	DefaultLargeThreshold = 50
	DefaultMaxSize        = 500
	DefaultHoverStep      = 0.1
	DefaultFloor          = 0.0
)

// Surface receives tile mutations so the host can mirror the grid.
type Surface interface {
	// Reset removes every tile.
	Reset()
	// Append adds a tile at the end; index equals the previous tile count.
	Append(index int, t Tile)
	// Update replaces the tile at index after its brightness changed.
	Update(index int, t Tile)
}

// Confirmer asks the user to confirm a request. It must return immediately;
// the request's continuations run later.
type Confirmer interface {
	Prompt(req prompt.Request) error
}

// Options tune the controller. Zero values fall back to the defaults, except
// Floor where zero is the default.
type Options struct {
	LargeThreshold int
	MaxSize        int
	HoverStep      float64
	Floor          float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		LargeThreshold: DefaultLargeThreshold,
		MaxSize:        DefaultMaxSize,
		HoverStep:      DefaultHoverStep,
		Floor:          DefaultFloor,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.LargeThreshold <= 0 {
		o.LargeThreshold = d.LargeThreshold
	}
	if o.MaxSize <= 0 {
		o.MaxSize = d.MaxSize
	}
	if o.HoverStep <= 0 {
		o.HoverStep = d.HoverStep
	}
	if o.Floor < 0 || o.Floor >= 1 {
		o.Floor = d.Floor
	}
	return o
}

// Controller owns the tile collection. The grid is either empty or holds
// exactly size*size tiles for the last populated size.
type Controller struct {
	surface Surface
	confirm Confirmer
	opts    Options
	log     zerolog.Logger

	size  int
	tiles []Tile
}

// New creates an empty grid that mirrors its tiles onto surface and routes
// confirmations through confirmer.
func New(surface Surface, confirmer Confirmer, opts Options, logger zerolog.Logger) *Controller {
	return &Controller{
		surface: surface,
		confirm: confirmer,
		opts:    opts.withDefaults(),
		log:     logger,
	}
}

// Options returns the effective tuning.
func (c *Controller) Options() Options {
	return c.opts
}

// SetOptions replaces the tuning. Existing tiles keep their brightness.
func (c *Controller) SetOptions(opts Options) {
	c.opts = opts.withDefaults()
}

// Size returns the side length of the grid, 0 when empty.
func (c *Controller) Size() int {
	return c.size
}

// Len returns the number of tiles.
func (c *Controller) Len() int {
	return len(c.tiles)
}

// Empty reports whether the grid has no tiles.
func (c *Controller) Empty() bool {
	return len(c.tiles) == 0
}

// Tile returns the tile at index.
func (c *Controller) Tile(index int) (Tile, bool) {
	if index < 0 || index >= len(c.tiles) {
		return Tile{}, false
	}
	return c.tiles[index], true
}

// Tiles returns a copy of the tile collection.
func (c *Controller) Tiles() []Tile {
	out := make([]Tile, len(c.tiles))
	copy(out, c.tiles)
	return out
}

// RequestFill populates the grid with size*size tiles. A size the grid already
// has is a no-op. Sizes above the large-grid threshold are only populated once
// the user confirms.
func (c *Controller) RequestFill(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	if c.size == size && len(c.tiles) == size*size {
		c.log.Debug().Int("size", size).Msg("fill skipped, grid already at size")
		return nil
	}

	if size > c.opts.MaxSize {
		return fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, c.opts.MaxSize)
	}

	if size <= c.opts.LargeThreshold {
		c.Populate(size)
		return nil
	}

	req, err := prompt.NewWarning(prompt.KindGridSizeHigh, size, size)
	if err != nil {
		return err
	}
	req.OnConfirm = func() { c.Populate(size) }

	c.log.Debug().
		Int("size", size).
		Int("threshold", c.opts.LargeThreshold).
		Msg("large grid requires confirmation")

	return c.confirm.Prompt(req)
}

// Populate replaces the grid with size*size fresh tiles.
func (c *Controller) Populate(size int) {
	if size < 1 {
		return
	}

	c.Clear()

	basis := Basis(size)
	c.size = size
	c.tiles = make([]Tile, size*size)
	for i := range c.tiles {
		c.tiles[i] = newTile(basis)
		c.surface.Append(i, c.tiles[i])
	}

	c.log.Info().Int("size", size).Int("tiles", len(c.tiles)).Msg("grid populated")
}

// RequestReset clears the grid once the user confirms. An empty grid is left
// alone.
func (c *Controller) RequestReset() error {
	if c.Empty() {
		return nil
	}

	req, err := prompt.NewWarning(prompt.KindDestructiveAction)
	if err != nil {
		return err
	}
	req.OnConfirm = c.Clear

	return c.confirm.Prompt(req)
}

// Clear removes every tile.
func (c *Controller) Clear() {
	c.size = 0
	c.tiles = nil
	c.surface.Reset()
}

// RequestWipe restores every tile to full brightness once the user confirms.
// An empty grid is left alone.
func (c *Controller) RequestWipe() error {
	if c.Empty() {
		return nil
	}

	req, err := prompt.NewWarning(prompt.KindWipe)
	if err != nil {
		return err
	}
	req.OnConfirm = c.Wipe

	return c.confirm.Prompt(req)
}

// Wipe sets every tile back to full brightness and keeps the size.
func (c *Controller) Wipe() {
	for i := range c.tiles {
		if c.tiles[i].Brightness == 1 {
			continue
		}
		c.tiles[i].Brightness = 1
		c.surface.Update(i, c.tiles[i])
	}
	c.log.Info().Int("size", c.size).Msg("grid wiped")
}

// OnTileHover dims the tile at index by one step. Indexes outside the grid
// are ignored.
func (c *Controller) OnTileHover(index int) {
	if index < 0 || index >= len(c.tiles) {
		return
	}

	t := &c.tiles[index]
	next := dim(t.Brightness, c.opts.HoverStep, c.opts.Floor)
	if next == t.Brightness {
		return
	}
	t.Brightness = next
	c.surface.Update(index, *t)
}
