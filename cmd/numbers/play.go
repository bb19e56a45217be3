//go:build cgo

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbers/internal/platform/desktop"
)

var (
	flagFont     string
	flagIcon     string
	flagWindowed bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open the game window. It starts fullscreen on the current monitor.

Controls:
  Mouse  - Click tiles and menu entries
  F1     - Toggle fullscreen
  Esc    - Back (closes help, leaves a round, quits from the main menu)

Examples:
  numbers play
  numbers play --windowed
  numbers play --font ./DejaVuSans.ttf`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TTF font (default: assets/fonts/Arimo-Regular.ttf)")
	playCmd.Flags().StringVar(&flagIcon, "icon", "assets/images/icon.png", "Path to the window icon")
	playCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Start in a window instead of fullscreen")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "numbers")
	if err != nil {
		fatal(err)
	}

	opts, err := gameOptions(logger)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	opts.Fullscreen = !flagWindowed

	icon := flagIcon
	if _, statErr := os.Stat(icon); statErr != nil {
		icon = ""
	}

	if err := desktop.Run(desktop.Options{
		Game:      opts,
		FontPath:  flagFont,
		IconPath:  icon,
		TargetFPS: flagFPS,
	}); err != nil {
		logger.Fatal("cannot run game", "error", err)
	}
}
