package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/sketchgrid/internal/core/prompt"
	"github.com/colonyops/sketchgrid/internal/core/styles"
)

// ModalOverlay is the terminal side of the confirmation modal. It implements
// prompt.Surface and renders the dialog over the canvas.
type ModalOverlay struct {
	view            prompt.View
	visible         bool
	confirmSelected bool // true = confirm button selected, false = abort button selected
	closing         Animation
}

// NewModalOverlay creates a hidden overlay whose closing transition lasts
// closeFrames frames.
func NewModalOverlay(closeFrames int) *ModalOverlay {
	return &ModalOverlay{closing: NewAnimation(closeFrames)}
}

// Show implements prompt.Surface. The abort button starts selected since
// every built-in prompt guards a destructive or expensive action.
func (o *ModalOverlay) Show(v prompt.View) {
	o.view = v
	o.visible = true
	o.confirmSelected = false
	o.closing.Stop()
}

// Hide implements prompt.Surface.
func (o *ModalOverlay) Hide() {
	o.view = prompt.View{}
	o.visible = false
	o.confirmSelected = false
	o.closing.Stop()
}

// PlayClose implements prompt.Surface.
func (o *ModalOverlay) PlayClose() {
	o.closing.Start()
}

// SetCloseFrames changes the length of future closing transitions.
func (o *ModalOverlay) SetCloseFrames(n int) {
	o.closing = NewAnimation(n)
}

// Closing reports whether the closing transition still has frames to play.
func (o *ModalOverlay) Closing() bool {
	return o.closing.Running()
}

// StepClose advances the closing transition and reports whether frames remain.
func (o *ModalOverlay) StepClose() bool {
	return o.closing.Tick()
}

// ToggleSelection switches the selected button.
func (o *ModalOverlay) ToggleSelection() {
	o.confirmSelected = !o.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (o *ModalOverlay) ConfirmSelected() bool {
	return o.confirmSelected
}

// Visible returns whether the modal should be displayed.
func (o *ModalOverlay) Visible() bool {
	return o.visible
}

// Overlay renders the modal centered over the given screen area.
func (o *ModalOverlay) Overlay(background string, width, height int) string {
	if !o.visible {
		return background
	}
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		o.render(),
	)
}

func (o *ModalOverlay) render() string {
	if o.closing.Running() {
		// The dialog fades: the description drops out halfway through.
		lines := []string{o.view.Heading}
		if o.closing.Progress() < 0.5 {
			lines = append(lines, "", o.view.Description)
		}
		return styles.ModalClosingStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	var confirmBtn, abortBtn string
	if o.confirmSelected {
		confirmBtn = styles.ModalButtonSelectedStyle.Render(o.view.ConfirmLabel)
		abortBtn = styles.ModalButtonStyle.Render(o.view.AbortLabel)
	} else {
		confirmBtn = styles.ModalButtonStyle.Render(o.view.ConfirmLabel)
		abortBtn = styles.ModalButtonSelectedStyle.Render(o.view.AbortLabel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", abortBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(styles.IconWarning+" "+o.view.Heading),
		"",
		o.view.Description,
		buttonRow,
		styles.ModalHelpStyle.Render("←/→ select  enter choose  y/n  esc dismiss"),
	)

	return styles.ModalStyle.Render(content)
}
