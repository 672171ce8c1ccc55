package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_Lifecycle(t *testing.T) {
	a := NewAnimation(3)
	assert.False(t, a.Running())

	a.Start()
	assert.True(t, a.Running())
	assert.InDelta(t, 0.0, a.Progress(), 1e-9)

	assert.True(t, a.Tick())
	assert.True(t, a.Tick())
	assert.False(t, a.Tick())
	assert.False(t, a.Running())
	assert.InDelta(t, 1.0, a.Progress(), 1e-9)

	// Ticking an idle animation is harmless.
	assert.False(t, a.Tick())
}

func TestAnimation_ZeroFrames(t *testing.T) {
	a := NewAnimation(0)
	a.Start()
	assert.False(t, a.Running())
	assert.InDelta(t, 1.0, a.Progress(), 1e-9)
}

func TestAnimation_Stop(t *testing.T) {
	a := NewAnimation(5)
	a.Start()
	a.Stop()
	assert.False(t, a.Running())
}

func TestAnimation_NegativeFrames(t *testing.T) {
	a := NewAnimation(-2)
	a.Start()
	assert.False(t, a.Running())
}
