package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/sketchgrid/internal/core/config"
	"github.com/colonyops/sketchgrid/internal/tui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal on
// stdout.
var ErrNotTerminal = errors.New("sketchgrid needs an interactive terminal")

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "size",
			Aliases:     []string{"s"},
			Usage:       "fill the grid with size x size tiles on start",
			Sources:     cli.EnvVars("SKETCHGRID_SIZE"),
			Destination: &cmd.flags.Size,
		},
		&cli.IntFlag{
			Name:        "threshold",
			Usage:       "largest size filled without confirmation",
			Sources:     cli.EnvVars("SKETCHGRID_THRESHOLD"),
			Destination: &cmd.flags.Threshold,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan *config.Config
	watcher, err := config.NewWatcher(cmd.flags.ConfigPath, cmd.flags.DataDir, log.Logger)
	if err != nil {
		log.Warn().Err(err).Str("path", cmd.flags.ConfigPath).Msg("config reload disabled")
	} else {
		defer func() { _ = watcher.Close() }()
		changes = cmd.withOverrides(ctx, watcher.Changes())
	}

	deps := tui.Deps{
		Config:        cfg,
		Logger:        log.Logger,
		ConfigChanges: changes,
	}
	opts := tui.Opts{
		InitialSize: cfg.Grid.DefaultSize,
	}

	p := tea.NewProgram(
		tui.New(deps, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok {
		log.Info().Int("size", model.Grid().Size()).Msg("tui closed")
	}

	return nil
}

// withOverrides re-applies the command line overrides to every reloaded
// config so an edit to the file does not undo them.
func (cmd *TuiCmd) withOverrides(ctx context.Context, in <-chan *config.Config) <-chan *config.Config {
	out := make(chan *config.Config)
	go func() {
		defer close(out)
		for cfg := range in {
			cmd.flags.applyTo(cfg)
			if err := cfg.Validate(); err != nil {
				log.Warn().Err(err).Msg("reloaded config rejected by overrides")
				continue
			}
			select {
			case out <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
