// Package config provides YAML-based game tuning, the difficulty ladder and
// the persisted player preferences.
package config

import (
	"time"

	"github.com/vovakirdan/numbers/internal/core"
)

// GameConfig contains all tuning for the numbers game.
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Grid      GridConfig      `yaml:"grid"`
	Buttons   ButtonsConfig   `yaml:"buttons"`
	Menu      MenuConfig      `yaml:"menu"`
	Durations DurationsConfig `yaml:"durations"`
}

// WindowConfig defines the initial window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Size returns the window size in pixels.
func (w WindowConfig) Size() core.Size {
	return core.Size{W: float64(w.Width), H: float64(w.Height)}
}

// GridConfig defines the tile grid of a round.
type GridConfig struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	TileWidth  float64  `yaml:"tile_width"`
	TileHeight float64  `yaml:"tile_height"`
	Margin     float64  `yaml:"margin"` // Space reserved around the grid before gaps are computed
	HGap       GapRange `yaml:"h_gap"`
	VGap       GapRange `yaml:"v_gap"`
}

// GapRange bounds the adaptive spacing between tiles on one axis.
type GapRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Tiles returns the number of tiles in the grid.
func (g GridConfig) Tiles() int {
	return g.Rows * g.Cols
}

// ButtonsConfig defines the round's own buttons.
type ButtonsConfig struct {
	Height        float64 `yaml:"height"`
	ExitWidth     float64 `yaml:"exit_width"`
	TryAgainWidth float64 `yaml:"try_again_width"`
	EdgeMargin    float64 `yaml:"edge_margin"`   // In-game Exit distance from the right edge
	Top           float64 `yaml:"top"`           // In-game Exit distance from the top edge
	ResultOffset  float64 `yaml:"result_offset"` // Win/Lose buttons below the vertical center
	ResultGap     float64 `yaml:"result_gap"`    // Gap right of center before the Win/Lose Exit button
}

// MenuConfig defines menu entry geometry.
type MenuConfig struct {
	ItemWidth    float64 `yaml:"item_width"`
	ItemHeight   float64 `yaml:"item_height"`
	ItemGap      float64 `yaml:"item_gap"`
	LocaleWidth  float64 `yaml:"locale_width"`
	LocaleHeight float64 `yaml:"locale_height"`
	LocaleGap    float64 `yaml:"locale_gap"`
}

// DurationsConfig holds round lengths per mode.
type DurationsConfig struct {
	Release DurationTable `yaml:"release"`
	Debug   DurationTable `yaml:"debug"`
}

// DurationTable maps each difficulty to a round length.
type DurationTable struct {
	Easy   time.Duration `yaml:"easy"`
	Medium time.Duration `yaml:"medium"`
	Hard   time.Duration `yaml:"hard"`
}

// For returns the round length for a difficulty.
func (t DurationTable) For(d Difficulty) time.Duration {
	switch d {
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	default:
		return t.Easy
	}
}
