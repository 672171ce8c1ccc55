package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/sketchgrid/internal/core/styles"
)

// Validate checks that the configuration is structurally valid. Problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("cannot be empty"))
	}

	g := c.Grid
	if g.LargeThreshold < 1 {
		errs = errs.Append("grid.large_threshold", fmt.Errorf("must be at least 1, got %d", g.LargeThreshold))
	}
	if g.MaxSize < 1 {
		errs = errs.Append("grid.max_size", fmt.Errorf("must be at least 1, got %d", g.MaxSize))
	}
	if g.DefaultSize < 0 {
		errs = errs.Append("grid.default_size", fmt.Errorf("cannot be negative, got %d", g.DefaultSize))
	} else if g.MaxSize >= 1 && g.DefaultSize > g.MaxSize {
		errs = errs.Append("grid.default_size", fmt.Errorf("%d exceeds max_size %d", g.DefaultSize, g.MaxSize))
	}
	if g.HoverStep <= 0 || g.HoverStep > 1 {
		errs = errs.Append("grid.hover_step", fmt.Errorf("must be in (0, 1], got %g", g.HoverStep))
	}
	if g.MinBrightness < 0 || g.MinBrightness >= 1 {
		errs = errs.Append("grid.min_brightness", fmt.Errorf("must be in [0, 1), got %g", g.MinBrightness))
	}
	if g.CanvasWidth < 1 {
		errs = errs.Append("grid.canvas_width", fmt.Errorf("must be at least 1, got %d", g.CanvasWidth))
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}
	if c.TUI.CloseFrames < 0 {
		errs = errs.Append("tui.close_frames", fmt.Errorf("cannot be negative, got %d", c.TUI.CloseFrames))
	}

	return errs.ToError()
}

// ValidateDeep runs Validate and then checks the config file and data
// directory on disk. An empty configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		c.Validate(),
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist accepts a missing path, since the data directory is
// created on first use.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
