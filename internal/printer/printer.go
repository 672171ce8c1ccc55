// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/sketchgrid/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one styled line per call.
type Printer struct {
	out io.Writer
}

// New creates a printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render("✔") + " " + fmt.Sprintf(format, args...))
}

// Infof writes a line prefixed with a warning marker.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.WarningStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

// Errorf writes a line prefixed with a cross.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✘") + " " + fmt.Sprintf(format, args...))
}
