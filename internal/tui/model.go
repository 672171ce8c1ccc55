// Package tui is the terminal front end: it hosts the canvas and the
// confirmation modal and feeds key, mouse and tick events to them.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/sketchgrid/internal/core/config"
	"github.com/colonyops/sketchgrid/internal/core/grid"
	"github.com/colonyops/sketchgrid/internal/core/prompt"
	"github.com/colonyops/sketchgrid/internal/core/styles"
	"github.com/colonyops/sketchgrid/pkg/logutils"
)

// canvasTop is the screen row of the canvas origin: header, input, spacer.
const canvasTop = 3

// configReloadedMsg carries a config reloaded from disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// Deps holds the collaborators the TUI needs.
type Deps struct {
	Config *config.Config
	Logger zerolog.Logger
	// ConfigChanges delivers reloaded configs. Nil disables live reload.
	ConfigChanges <-chan *config.Config
}

// Opts holds per-run options.
type Opts struct {
	// InitialSize fills the grid on start. 0 shows the welcome screen.
	InitialSize int
}

// Model is the bubbletea model for sketchgrid. The grid, modal and their
// surfaces are pointers shared across copies of the model; bubbletea calls
// Update from a single goroutine so they are never mutated concurrently.
type Model struct {
	cfg     *config.Config
	log     zerolog.Logger
	changes <-chan *config.Config

	keys  keyMap
	help  help.Model
	input textinput.Model

	canvas  *Canvas
	overlay *ModalOverlay
	welcome *welcome
	grid    *grid.Controller
	modal   *prompt.Modal

	status    string
	statusErr bool

	width, height int
	quitting      bool
}

// New creates the model and applies the initial fill, if any.
func New(deps Deps, opts Opts) Model {
	cfg := deps.Config
	styles.SetTheme(cfg.Palette())

	canvas := NewCanvas(cfg.Grid.CanvasWidth)
	overlay := NewModalOverlay(cfg.TUI.CloseFrames)
	modal := prompt.NewModal(overlay, logutils.Component(deps.Logger, "modal"))
	ctrl := grid.New(canvas, modal, cfg.GridOptions(), logutils.Component(deps.Logger, "grid"))

	input := textinput.New()
	input.Prompt = "size › "
	input.PromptStyle = styles.InputPromptStyle
	input.Placeholder = strconv.Itoa(max(cfg.Grid.DefaultSize, 16))
	input.CharLimit = 4
	input.Width = 6
	input.Focus()

	m := Model{
		cfg:     cfg,
		log:     logutils.Component(deps.Logger, "tui"),
		changes: deps.ConfigChanges,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		canvas:  canvas,
		overlay: overlay,
		welcome: &welcome{log: deps.Logger},
		grid:    ctrl,
		modal:   modal,
	}

	if opts.InitialSize > 0 {
		m.input.SetValue(strconv.Itoa(opts.InitialSize))
		m.requestFill(opts.InitialSize)
	} else {
		m.setStatus("Canvas empty")
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForConfig(m.changes))
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.canvas.SetWidth(min(m.cfg.Grid.CanvasWidth, msg.Width))
		return m, nil

	case closeTickMsg:
		if m.overlay.StepClose() {
			return m, closeTick()
		}
		m.modal.Finish()
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.changes)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.modal.Active() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Fill):
		m.fillFromInput()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if m.grid.Empty() {
			m.setStatus("Canvas already empty")
			return m, nil
		}
		m.report(m.grid.RequestReset())
		return m, nil

	case key.Matches(msg, m.keys.Wipe):
		if m.grid.Empty() {
			m.setStatus("Nothing to wipe")
			return m, nil
		}
		m.report(m.grid.RequestWipe())
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if !m.input.Focused() || !sizeInputKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sizeInputKey filters what reaches the size input: digits and editing keys.
func sizeInputKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
	default:
		return true
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.modal.State() != prompt.StateOpen {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.overlay.ToggleSelection()

	case key.Matches(msg, m.keys.Choose):
		if m.overlay.ConfirmSelected() {
			m.modal.Confirm()
		} else {
			m.modal.Abort()
			m.setStatus("Aborted")
			return m, nil
		}
		m.syncStatus()

	case key.Matches(msg, m.keys.Yes):
		m.modal.Confirm()
		m.syncStatus()

	case key.Matches(msg, m.keys.No):
		m.modal.Abort()
		m.setStatus("Aborted")

	case key.Matches(msg, m.keys.Dismiss):
		m.modal.Dismiss()
		m.setStatus("Dismissed")
		if m.overlay.Closing() {
			return m, closeTick()
		}
		m.modal.Finish()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	if m.modal.Active() || msg.Action != tea.MouseActionMotion {
		return
	}
	if idx, ok := m.canvas.HitTest(msg.X, msg.Y-canvasTop); ok {
		m.grid.OnTileHover(idx)
	}
}

func (m *Model) fillFromInput() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		raw = m.input.Placeholder
	}

	size, err := strconv.Atoi(raw)
	if err != nil {
		m.setError(fmt.Errorf("grid size %q is not a number", raw))
		return
	}
	m.requestFill(size)
}

func (m *Model) requestFill(size int) {
	if err := m.grid.RequestFill(size); err != nil {
		m.report(err)
		return
	}
	m.syncStatus()
}

// report shows err in the status line, or the grid state when err is nil.
func (m *Model) report(err error) {
	switch {
	case err == nil:
		m.syncStatus()
	case errors.Is(err, grid.ErrInvalidSize), errors.Is(err, grid.ErrSizeTooLarge):
		m.setError(err)
	default:
		m.log.Error().Err(err).Msg("request failed")
		m.setError(err)
	}
}

func (m *Model) syncStatus() {
	switch {
	case m.modal.Active():
		m.setStatus("Waiting for confirmation")
	case m.grid.Empty():
		m.setStatus("Canvas empty")
	default:
		s := m.grid.Size()
		m.setStatus(fmt.Sprintf("%dx%d grid", s, s))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.grid.SetOptions(cfg.GridOptions())

	styles.SetTheme(cfg.Palette())
	m.input.PromptStyle = styles.InputPromptStyle
	m.overlay.SetCloseFrames(cfg.TUI.CloseFrames)
	m.welcome.Invalidate()

	width := cfg.Grid.CanvasWidth
	if m.width > 0 {
		width = min(width, m.width)
	}
	m.canvas.SetWidth(width)
	m.canvas.Restyle()

	m.log.Debug().
		Int("large_threshold", cfg.Grid.LargeThreshold).
		Str("theme", cfg.TUI.Theme).
		Msg("config applied")
	m.setStatus("Config reloaded")
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	size := "empty"
	if !m.grid.Empty() {
		size = fmt.Sprintf("%dx%d", m.grid.Size(), m.grid.Size())
	}
	header := styles.TitleStyle.Render(styles.IconBrush+" sketchgrid") +
		"  " + styles.StatusStyle.Render(styles.IconGrid+" "+size)

	var body string
	if m.grid.Empty() {
		body = m.welcome.View(min(m.cfg.Grid.CanvasWidth, max(m.width, 20)))
	} else {
		body = m.canvas.View()
	}

	statusStyle := styles.StatusStyle
	if m.statusErr {
		statusStyle = styles.StatusErrorStyle
	}

	bg := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.input.View(),
		"",
		body,
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)

	return m.overlay.Overlay(bg, m.width, m.height)
}

// Grid exposes the grid controller, mainly for callers inspecting the final
// model after the program exits.
func (m Model) Grid() *grid.Controller {
	return m.grid
}
