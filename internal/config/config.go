// Package config loads the houseprice CLI configuration from a TOML file.
// A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ChartConfig controls the terminal scatter plot dimensions.
type ChartConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config holds the user-adjustable settings.
type Config struct {
	// DataDir overrides the default database location (~/.houseprice/data).
	DataDir string `toml:"data_dir"`
	// Compression is the default codec for snapshot export, by name
	// ("none", "zstd", "s2", "lz4"). Empty means infer from the file
	// extension.
	Compression string      `toml:"compression"`
	Chart       ChartConfig `toml:"chart"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Width:  60,
			Height: 20,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.houseprice/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".houseprice", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Chart.Width <= 0 {
		cfg.Chart.Width = Default().Chart.Width
	}
	if cfg.Chart.Height <= 0 {
		cfg.Chart.Height = Default().Chart.Height
	}

	return cfg, nil
}
