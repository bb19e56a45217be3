package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/numbers.yaml
var defaultNumbersYAML []byte

// DefaultConfig returns the hard-coded default configuration.
// It mirrors defaults/numbers.yaml and is used when the embedded YAML cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Title:  "Numbers Game",
			Width:  1600,
			Height: 900,
		},
		Grid: GridConfig{
			Rows:       7,
			Cols:       8,
			TileWidth:  100,
			TileHeight: 60,
			Margin:     600,
			HGap:       GapRange{Min: 20, Max: 100},
			VGap:       GapRange{Min: 20, Max: 100},
		},
		Buttons: ButtonsConfig{
			Height:        60,
			ExitWidth:     150,
			TryAgainWidth: 250,
			EdgeMargin:    10,
			Top:           80,
			ResultOffset:  100,
			ResultGap:     50,
		},
		Menu: MenuConfig{
			ItemWidth:    400,
			ItemHeight:   80,
			ItemGap:      40,
			LocaleWidth:  200,
			LocaleHeight: 130,
			LocaleGap:    100,
		},
		Durations: DurationsConfig{
			Release: DurationTable{
				Easy:   3 * time.Minute,
				Medium: 2 * time.Minute,
				Hard:   2 * time.Minute,
			},
			Debug: DurationTable{
				Easy:   3 * time.Minute,
				Medium: time.Minute,
				Hard:   10 * time.Second,
			},
		},
	}
}
