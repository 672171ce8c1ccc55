package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned when a warning is requested for a kind that
	// has no template.
	ErrInvalidKind = errors.New("invalid warning kind")

	// ErrMissingArguments is returned when a warning template is given the
	// wrong number of description values.
	ErrMissingArguments = errors.New("wrong number of warning arguments")

	// ErrPromptActive is returned when a prompt is issued while another one
	// is still open or closing.
	ErrPromptActive = errors.New("a prompt is already active")
)

// Kind identifies one of the built-in warnings.
type Kind int

const (
	KindCustom            Kind = iota // request built by hand, not from a template
	KindDestructiveAction             // clearing the canvas
	KindGridSizeHigh                  // populating a grid above the large-grid threshold
	KindWipe                          // restoring every tile to full brightness
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindDestructiveAction:
		return "destructive-action"
	case KindGridSizeHigh:
		return "grid-size-high"
	case KindWipe:
		return "wipe"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the built-in warning kind named s, as printed by String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindDestructiveAction, KindGridSizeHigh, KindWipe} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindCustom, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

type warning struct {
	heading      string
	description  string
	confirmLabel string
	abortLabel   string
	args         int
}

const headingPrefix = "Warning: "

// template returns the warning text for k. Every kind must have exactly one
// case here; KindCustom has no template.
func (k Kind) template() (warning, error) {
	switch k {
	case KindDestructiveAction:
		return warning{
			heading:      "Drawing will be deleted",
			description:  "Are you sure you want to clear your canvas?",
			confirmLabel: "Delete Grid",
			abortLabel:   "Abort",
		}, nil
	case KindGridSizeHigh:
		return warning{
			heading:      "Grid length high",
			description:  "A grid size of {0}x{1} may cause performance issues.",
			confirmLabel: "Create Grid",
			abortLabel:   "Abort",
			args:         2,
		}, nil
	case KindWipe:
		return warning{
			heading:      "Drawing will be wiped",
			description:  "Are you sure you want to reset your canvas?",
			confirmLabel: "Wipe Grid",
			abortLabel:   "Abort",
		}, nil
	}

	return warning{}, fmt.Errorf("%w: %s", ErrInvalidKind, k)
}
