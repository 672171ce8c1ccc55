package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/sketchgrid/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Size and Threshold override the config file when set.
	Size      int
	Threshold int

	// Config is set by LoadConfig.
	Config *config.Config
}

// LoadConfig loads and validates the config file, applies the command line
// overrides and stores the result on f.
func (f *Flags) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath, f.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg

	if err := f.ApplyOverrides(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sketchgrid", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sketchgrid")
}

// ApplyOverrides copies non-zero command line overrides onto the loaded
// config and validates the result.
func (f *Flags) ApplyOverrides() error {
	if f.Config == nil {
		return nil
	}
	f.applyTo(f.Config)
	return f.Config.Validate()
}

func (f *Flags) applyTo(cfg *config.Config) {
	if f.Size > 0 {
		cfg.Grid.DefaultSize = f.Size
	}
	if f.Threshold > 0 {
		cfg.Grid.LargeThreshold = f.Threshold
	}
}
