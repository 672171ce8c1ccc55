package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/sketchgrid/internal/core/styles"
)

const welcomeMarkdown = `# sketchgrid

Type a grid size and press **enter** to fill the canvas.

- Move the mouse over a tile to darken it.
- **ctrl+w** wipes the drawing, **ctrl+r** clears the canvas.
- Grids above the large-grid threshold ask before they are created.
`

// welcome renders the placeholder shown while the grid is empty. Rendering
// is cached per width.
type welcome struct {
	log      zerolog.Logger
	width    int
	rendered string
}

func (w *welcome) View(width int) string {
	width = max(width, 20)
	if w.rendered != "" && w.width == width {
		return w.rendered
	}

	w.width = width
	w.rendered = welcomeMarkdown

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		w.log.Warn().Err(err).Msg("welcome renderer unavailable")
		return w.rendered
	}

	out, err := r.Render(welcomeMarkdown)
	if err != nil {
		w.log.Warn().Err(err).Msg("welcome render failed")
		return w.rendered
	}

	w.rendered = out
	return w.rendered
}

// Invalidate drops the cached rendering, e.g. after a theme change.
func (w *welcome) Invalidate() {
	w.rendered = ""
}
