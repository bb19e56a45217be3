package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.numbers/configs/numbers.yaml -> ./configs/numbers.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("numbers.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/numbers.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultNumbersYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults, so a partial file only overrides what it names.
func parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the layout code cannot handle.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Grid.Rows < 2 || c.Grid.Cols < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Grid.TileWidth <= 0 || c.Grid.TileHeight <= 0 {
		errs = append(errs, errors.New("tile size must be positive"))
	}
	if c.Grid.HGap.Min > c.Grid.HGap.Max || c.Grid.VGap.Min > c.Grid.VGap.Max {
		errs = append(errs, errors.New("gap min must not exceed max"))
	}
	for _, d := range []DurationTable{c.Durations.Release, c.Durations.Debug} {
		if d.Easy <= 0 || d.Medium <= 0 || d.Hard <= 0 {
			errs = append(errs, errors.New("round durations must be positive"))
			break
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numbers", "configs", filename)
}
