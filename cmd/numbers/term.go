package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/platform/tui"
)

var (
	flagLogFile    string
	flagScreenshot bool
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play inside the terminal. Needs a terminal with mouse support.

Controls:
  Mouse      - Click tiles and menu entries
  F1/F       - Toggle fullscreen (recorded only)
  Esc/B      - Back
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save the screen to ~/.numbers/screenshots (with --screenshots)

Logs are discarded unless --log-file is set, since log lines would draw
over the game.

Examples:
  numbers term
  numbers term --fps 30 --log-file /tmp/numbers.log --log-level debug`,
	Run: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	termCmd.Flags().BoolVar(&flagScreenshot, "screenshots", false, "Enable ctrl+s screenshots")
}

func runTerm(_ *cobra.Command, _ []string) {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, "numbers-term")
	if err != nil {
		fatal(err)
	}

	opts, err := gameOptions(logger)
	if err != nil {
		fatal(err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	if err := tui.Run(opts, tui.Config{
		RuntimeConfig: rt,
		MinSize:       opts.Config.Window.Size(),
		Screenshot:    flagScreenshot,
	}); err != nil {
		logger.Error("game stopped", "error", err)
		fatal(err)
	}
}
