// Package config handles configuration loading and validation for sketchgrid.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/sketchgrid/internal/core/grid"
	"github.com/colonyops/sketchgrid/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig `yaml:"grid"`
	TUI     TUIConfig  `yaml:"tui"`
	DataDir string     `yaml:"-"` // set by caller, not from config file
}

// GridConfig tunes the drawing grid.
type GridConfig struct {
	DefaultSize    int     `yaml:"default_size"`    // 0 starts on the welcome screen
	LargeThreshold int     `yaml:"large_threshold"` // sizes above this need confirmation
	MaxSize        int     `yaml:"max_size"`        // sizes above this are rejected
	HoverStep      float64 `yaml:"hover_step"`      // brightness removed per hover
	MinBrightness  float64 `yaml:"min_brightness"`  // brightness floor
	CanvasWidth    int     `yaml:"canvas_width"`    // canvas width in terminal cells
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme       string `yaml:"theme"`
	CloseFrames int    `yaml:"close_frames"` // frames in the modal closing transition
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			LargeThreshold: grid.DefaultLargeThreshold,
			MaxSize:        grid.DefaultMaxSize,
			HoverStep:      grid.DefaultHoverStep,
			MinBrightness:  grid.DefaultFloor,
			CanvasWidth:    64,
		},
		TUI: TUIConfig{
			Theme:       styles.DefaultTheme,
			CloseFrames: 4,
		},
	}
}

// Load reads configuration from the given path, sets the data directory and
// validates the result. If configPath is empty or doesn't exist, returns
// defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Parse(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration like Load but skips validation, so callers can
// report every problem in a broken file.
func Parse(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// DefaultSize and MinBrightness are meaningful at zero and are left alone.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Grid.LargeThreshold == 0 {
		c.Grid.LargeThreshold = defaults.Grid.LargeThreshold
	}
	if c.Grid.MaxSize == 0 {
		c.Grid.MaxSize = defaults.Grid.MaxSize
	}
	if c.Grid.HoverStep == 0 {
		c.Grid.HoverStep = defaults.Grid.HoverStep
	}
	if c.Grid.CanvasWidth == 0 {
		c.Grid.CanvasWidth = defaults.Grid.CanvasWidth
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// GridOptions converts the grid settings into controller options.
func (c *Config) GridOptions() grid.Options {
	return grid.Options{
		LargeThreshold: c.Grid.LargeThreshold,
		MaxSize:        c.Grid.MaxSize,
		HoverStep:      c.Grid.HoverStep,
		Floor:          c.Grid.MinBrightness,
	}
}

// Palette returns the configured theme palette, falling back to the default.
func (c *Config) Palette() styles.Palette {
	if p, ok := styles.GetPalette(c.TUI.Theme); ok {
		return p
	}
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return p
}
