package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// closeFrameInterval is the delay between frames of the modal closing
// transition.
const closeFrameInterval = 60 * time.Millisecond

// closeTickMsg advances the modal closing transition by one frame.
type closeTickMsg struct{}

func closeTick() tea.Cmd {
	return tea.Tick(closeFrameInterval, func(time.Time) tea.Msg {
		return closeTickMsg{}
	})
}

// Animation counts down a fixed number of frames.
type Animation struct {
	ticksMax  int
	ticksLeft int
}

// NewAnimation creates an idle animation that runs for ticksMax frames once
// started.
func NewAnimation(ticksMax int) Animation {
	return Animation{ticksMax: max(ticksMax, 0)}
}

// Start rewinds the animation to its first frame.
func (a *Animation) Start() {
	a.ticksLeft = a.ticksMax
}

// Stop ends the animation immediately.
func (a *Animation) Stop() {
	a.ticksLeft = 0
}

// Tick advances one frame and reports whether frames remain.
func (a *Animation) Tick() bool {
	if a.ticksLeft > 0 {
		a.ticksLeft--
	}
	return a.ticksLeft > 0
}

// Running reports whether frames remain.
func (a Animation) Running() bool {
	return a.ticksLeft > 0
}

// Progress returns how far the animation has played, from 0 to 1.
func (a Animation) Progress() float64 {
	if a.ticksMax == 0 {
		return 1
	}
	return 1 - float64(a.ticksLeft)/float64(a.ticksMax)
}
