package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \n\x1b[31mred\x1b[0m\n\n"
	assert.Equal(t, "bold\nred", StripANSI(in))
}

func TestKeyPress(t *testing.T) {
	assert.Equal(t, "y", KeyPress('y').String())
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "esc", KeyEsc().String())
	assert.Equal(t, "ctrl+r", Key(tea.KeyCtrlR).String())
}

func TestKeyPressString(t *testing.T) {
	msgs := KeyPressString("12")
	assert.Len(t, msgs, 2)
	assert.Equal(t, "1", msgs[0].(tea.KeyMsg).String())
}
