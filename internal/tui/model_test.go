package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/sketchgrid/internal/core/config"
	"github.com/colonyops/sketchgrid/internal/core/prompt"
	"github.com/colonyops/sketchgrid/pkg/tuitest"
)

func newTestModel(t *testing.T, threshold, initial int) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Grid.LargeThreshold = threshold
	cfg.TUI.CloseFrames = 2
	return New(Deps{Config: &cfg, Logger: zerolog.Nop()}, Opts{InitialSize: initial})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func typeSize(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = send(t, m, tuitest.KeyPressString(s)...)
	m, _ = send(t, m, tuitest.KeyEnter())
	return m
}

func TestModel_StartsEmpty(t *testing.T) {
	m := newTestModel(t, 50, 0)

	assert.True(t, m.grid.Empty())
	assert.Equal(t, "Canvas empty", m.status)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "sketchgrid")
	assert.Contains(t, out, "Canvas empty")
}

func TestModel_InitialSize(t *testing.T) {
	m := newTestModel(t, 50, 6)

	assert.Equal(t, 6, m.grid.Size())
	assert.Equal(t, 36, m.canvas.Len())
	assert.Equal(t, "6x6 grid", m.status)
}

func TestModel_FillFromInput(t *testing.T) {
	m := newTestModel(t, 50, 0)

	m = typeSize(t, m, "8")

	assert.Equal(t, 8, m.grid.Size())
	assert.Equal(t, 64, m.canvas.Len())
	assert.False(t, m.statusErr)
}

func TestModel_EmptyInputUsesPlaceholder(t *testing.T) {
	m := newTestModel(t, 50, 0)

	m, _ = send(t, m, tuitest.KeyEnter())

	assert.Equal(t, 16, m.grid.Size())
}

func TestModel_InputAcceptsDigitsOnly(t *testing.T) {
	m := newTestModel(t, 50, 0)

	m, _ = send(t, m, tuitest.KeyPressString("a1b2")...)

	assert.Equal(t, "12", m.input.Value())
}

func TestModel_InvalidSize(t *testing.T) {
	m := newTestModel(t, 50, 3)
	m.input.SetValue("")

	m = typeSize(t, m, "0")

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "at least 1")
	assert.Equal(t, 3, m.grid.Size(), "grid untouched")
}

func TestModel_LargeFill(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		wantSize int
	}{
		{name: "y confirms", keys: []tea.Msg{tuitest.KeyPress('y')}, wantSize: 10},
		{name: "n aborts", keys: []tea.Msg{tuitest.KeyPress('n')}, wantSize: 0},
		{name: "enter chooses abort by default", keys: []tea.Msg{tuitest.KeyEnter()}, wantSize: 0},
		{
			name:     "toggle then enter confirms",
			keys:     []tea.Msg{tuitest.Key(tea.KeyRight), tuitest.KeyEnter()},
			wantSize: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 5, 0)

			m = typeSize(t, m, "10")
			require.True(t, m.modal.Active())
			assert.True(t, m.grid.Empty(), "waits for confirmation")
			assert.Contains(t, tuitest.StripANSI(m.View()), "10x10 may cause performance issues")

			m, _ = send(t, m, tt.keys...)

			assert.False(t, m.modal.Active())
			assert.Equal(t, tt.wantSize, m.grid.Size())
		})
	}
}

func TestModel_DismissPlaysCloseTransition(t *testing.T) {
	m := newTestModel(t, 5, 0)
	m = typeSize(t, m, "10")

	m, cmd := send(t, m, tuitest.KeyEsc())
	require.NotNil(t, cmd, "close transition scheduled")
	assert.Equal(t, prompt.StateClosing, m.modal.State())
	assert.Equal(t, "Dismissed", m.status)

	// Keys are ignored while the dialog closes.
	m, _ = send(t, m, tuitest.KeyPress('y'))
	assert.True(t, m.grid.Empty())

	m, cmd = send(t, m, closeTickMsg{})
	require.NotNil(t, cmd)
	m, cmd = send(t, m, closeTickMsg{})
	assert.Nil(t, cmd)

	assert.False(t, m.modal.Active())
	assert.False(t, m.overlay.Visible())
	assert.True(t, m.grid.Empty(), "dismiss never fills")
}

func TestModel_ResetAndWipe(t *testing.T) {
	m := newTestModel(t, 50, 4)

	m, _ = send(t, m, tuitest.MouseMotion(0, canvasTop))
	tile, _ := m.grid.Tile(0)
	require.InDelta(t, 0.9, tile.Brightness, 1e-12)

	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlW))
	require.True(t, m.modal.Active())
	m, _ = send(t, m, tuitest.KeyPress('y'))
	tile, _ = m.grid.Tile(0)
	assert.InDelta(t, 1.0, tile.Brightness, 1e-12)
	assert.Equal(t, 4, m.grid.Size())

	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlR))
	require.True(t, m.modal.Active())
	m, _ = send(t, m, tuitest.KeyPress('y'))
	assert.True(t, m.grid.Empty())
	assert.Equal(t, 0, m.canvas.Len())

	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlR))
	assert.False(t, m.modal.Active(), "nothing to clear")
	assert.Equal(t, "Canvas already empty", m.status)
}

func TestModel_MouseHover(t *testing.T) {
	m := newTestModel(t, 50, 4) // 64 wide canvas: tiles are 16x8

	m, _ = send(t, m,
		tuitest.MouseMotion(20, canvasTop+9),
		tuitest.MouseMotion(21, canvasTop+9),
	)

	tile, _ := m.grid.Tile(5)
	assert.InDelta(t, 0.8, tile.Brightness, 1e-12)

	other, _ := m.grid.Tile(0)
	assert.InDelta(t, 1.0, other.Brightness, 1e-12)

	// Header rows and clicks do not paint.
	m, _ = send(t, m,
		tuitest.MouseMotion(0, 0),
		tea.MouseMsg{X: 0, Y: canvasTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	)
	other, _ = m.grid.Tile(0)
	assert.InDelta(t, 1.0, other.Brightness, 1e-12)
}

func TestModel_MouseIgnoredWhileModalOpen(t *testing.T) {
	m := newTestModel(t, 50, 4)
	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlR))
	require.True(t, m.modal.Active())

	m, _ = send(t, m, tuitest.MouseMotion(0, canvasTop))

	tile, _ := m.grid.Tile(0)
	assert.InDelta(t, 1.0, tile.Brightness, 1e-12)
}

func TestModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, 50, 0)

	cfg := config.DefaultConfig()
	cfg.Grid.LargeThreshold = 3
	cfg.TUI.Theme = "gruvbox"
	t.Cleanup(func() {
		d := config.DefaultConfig()
		m.applyConfig(&d)
	})

	m, cmd := send(t, m, configReloadedMsg{cfg: &cfg})
	assert.Nil(t, cmd, "no channel to wait on")
	assert.Equal(t, "Config reloaded", m.status)
	assert.Equal(t, 3, m.grid.Options().LargeThreshold)

	m = typeSize(t, m, "4")
	assert.True(t, m.modal.Active())
}

func TestModel_WaitForConfig(t *testing.T) {
	assert.Nil(t, waitForConfig(nil))

	ch := make(chan *config.Config, 1)
	cfg := config.DefaultConfig()
	ch <- &cfg

	msg := waitForConfig(ch)()
	got, ok := msg.(configReloadedMsg)
	require.True(t, ok)
	assert.Same(t, &cfg, got.cfg)

	close(ch)
	assert.Nil(t, waitForConfig(ch)())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 50, 0)

	m, cmd := send(t, m, tuitest.KeyPress('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ForceQuitWhileModalOpen(t *testing.T) {
	m := newTestModel(t, 50, 2)
	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlR))
	require.True(t, m.modal.Active())

	_, cmd := send(t, m, tuitest.Key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t, 50, 4)

	m, _ = send(t, m, tuitest.WindowSize(32, 40))

	w, _ := m.canvas.CellSize()
	assert.Equal(t, 8, w)
}

func TestModelView_ModalOpen(t *testing.T) {
	m := newTestModel(t, 50, 60)
	require.Equal(t, prompt.StateOpen, m.modal.State())
	m, _ = send(t, m, tuitest.WindowSize(60, 13))

	output := tuitest.StripANSI(m.View())
	golden.RequireEqual(t, []byte(output))
}

func TestModelView_ModalClosing(t *testing.T) {
	m := newTestModel(t, 50, 60)
	m, _ = send(t, m, tuitest.WindowSize(60, 13), tuitest.KeyEsc())
	require.Equal(t, prompt.StateClosing, m.modal.State())

	output := tuitest.StripANSI(m.View())
	golden.RequireEqual(t, []byte(output))
}

func TestModelView_ModalClosingLastFrame(t *testing.T) {
	m := newTestModel(t, 50, 60)
	m, _ = send(t, m, tuitest.WindowSize(61, 13), tuitest.KeyEsc(), closeTickMsg{})
	require.Equal(t, prompt.StateClosing, m.modal.State())

	output := tuitest.StripANSI(m.View())
	golden.RequireEqual(t, []byte(output))
}
