// Package prompt implements the confirmation modal: warning templates, request
// interpolation, and the confirm/abort/dismiss decision protocol.
package prompt

import (
	"github.com/rs/zerolog"
)

// Surface is the host side of a modal. The modal tells it what to show and
// when to hide; it never reads anything back.
type Surface interface {
	// Show opens the modal with the given text.
	Show(View)
	// Hide closes the modal immediately.
	Hide()
	// PlayClose starts the closing transition. The host calls Modal.Finish
	// once the transition is done.
	PlayClose()
}

// State is the lifecycle of a Modal.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one prompt cycle.
type Decision int

const (
	DecisionConfirmed Decision = iota
	DecisionAborted
	DecisionDismissed
)

func (d Decision) String() string {
	switch d {
	case DecisionConfirmed:
		return "confirmed"
	case DecisionAborted:
		return "aborted"
	case DecisionDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Modal owns a single prompt at a time. Confirm, Abort and Dismiss are the
// only handlers; a prompt swaps the stored request and nothing else, so
// repeated prompts never stack up handlers.
type Modal struct {
	surface Surface
	log     zerolog.Logger

	state State
	req   Request
}

// NewModal creates a closed modal that renders to surface.
func NewModal(surface Surface, logger zerolog.Logger) *Modal {
	return &Modal{
		surface: surface,
		log:     logger,
	}
}

// State reports where the modal is in its lifecycle.
func (m *Modal) State() State {
	return m.state
}

// Active reports whether a prompt is open or still closing.
func (m *Modal) Active() bool {
	return m.state != StateClosed
}

// Current returns the view of the open prompt.
func (m *Modal) Current() (View, bool) {
	if m.state != StateOpen {
		return View{}, false
	}
	return m.req.View(), true
}

// Prompt opens the modal for req and returns immediately. The decision arrives
// later through Confirm, Abort or Dismiss. A second prompt while one is active
// is rejected with ErrPromptActive.
func (m *Modal) Prompt(req Request) error {
	if m.state != StateClosed {
		m.log.Warn().
			Stringer("kind", req.Kind).
			Stringer("state", m.state).
			Msg("prompt rejected, modal busy")
		return ErrPromptActive
	}

	m.req = req
	m.state = StateOpen
	m.surface.Show(req.View())

	m.log.Debug().Stringer("kind", req.Kind).Msg("prompt opened")
	return nil
}

// Confirm closes the open prompt and runs its OnConfirm continuation. It
// returns false when no prompt was open.
func (m *Modal) Confirm() bool {
	if m.state != StateOpen {
		return false
	}

	req := m.close(DecisionConfirmed)
	if req.OnConfirm != nil {
		req.OnConfirm()
	}
	return true
}

// Abort closes the open prompt and runs its OnAbort continuation. It returns
// false when no prompt was open.
func (m *Modal) Abort() bool {
	if m.state != StateOpen {
		return false
	}

	req := m.close(DecisionAborted)
	if req.OnAbort != nil {
		req.OnAbort()
	}
	return true
}

// Dismiss handles the implicit cancel gesture: the closing transition plays
// and neither continuation runs.
func (m *Modal) Dismiss() bool {
	if m.state != StateOpen {
		return false
	}

	m.log.Debug().
		Stringer("kind", m.req.Kind).
		Stringer("decision", DecisionDismissed).
		Msg("prompt resolved")

	m.req = Request{}
	m.state = StateClosing
	m.surface.PlayClose()
	return true
}

// Finish completes a closing transition started by Dismiss.
func (m *Modal) Finish() {
	if m.state != StateClosing {
		return
	}
	m.state = StateClosed
	m.surface.Hide()
}

// close resets the modal before any continuation runs, so a continuation is
// free to open the next prompt.
func (m *Modal) close(d Decision) Request {
	req := m.req

	m.req = Request{}
	m.state = StateClosed
	m.surface.Hide()

	m.log.Debug().
		Stringer("kind", req.Kind).
		Stringer("decision", d).
		Msg("prompt resolved")

	return req
}
