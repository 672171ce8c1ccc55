package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/sketchgrid/pkg/tuitest"
)

func TestKeyMap_Matches(t *testing.T) {
	k := defaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"enter fills", tuitest.KeyEnter(), k.Fill},
		{"ctrl+r clears", tuitest.Key(tea.KeyCtrlR), k.Reset},
		{"ctrl+w wipes", tuitest.Key(tea.KeyCtrlW), k.Wipe},
		{"q quits", tuitest.KeyPress('q'), k.Quit},
		{"ctrl+c force quits", tuitest.Key(tea.KeyCtrlC), k.ForceQuit},
		{"h toggles", tuitest.KeyPress('h'), k.Toggle},
		{"space chooses", tuitest.Key(tea.KeySpace), k.Choose},
		{"Y confirms", tuitest.KeyPress('Y'), k.Yes},
		{"n aborts", tuitest.KeyPress('n'), k.No},
		{"esc dismisses", tuitest.KeyEsc(), k.Dismiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	k := defaultKeyMap()

	assert.Len(t, k.ShortHelp(), 5)
	full := k.FullHelp()
	assert.Len(t, full, 2)
	for _, b := range full[1] {
		assert.NotEmpty(t, b.Help().Key, "modal bindings carry help")
	}
}
