// numbers is a minigame: click the numbered tiles in ascending order before
// the countdown runs out.
//
// Usage:
//
//	numbers                 - Play in a desktop window (same as "numbers play")
//	numbers play            - Play in a desktop window
//	numbers term            - Play in the terminal
//	numbers serve           - Start SSH server for remote play
//	numbers info            - Show round lengths, locales and preferences
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible shuffles
//	--config <path>     - Custom game config YAML
//	--prefs <path>      - Preferences file (default: $XDG_CONFIG_HOME/numbers/settings.cfg)
//	--debug             - Use the short debug round lengths
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbers/internal/app"
	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/session"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPrefs    string
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Numbers - click the tiles from 1 upwards before time runs out",
	Long: `Numbers shows a shuffled grid of numbered tiles. Click them in
ascending order before the countdown ends. Easy shows a long clock,
Hard also hides every tile you have already found.

Available commands:
  play     - Play in a desktop window (default)
  term     - Play in the terminal with the mouse
  serve    - Start SSH server for remote play
  info     - Show round lengths, locales and preferences

Examples:
  numbers
  numbers term --fps 30
  numbers play --windowed --debug
  numbers serve --ssh :2222`,
	Run: func(cmd *cobra.Command, args []string) {
		playCmd.Run(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", "", "Path to preferences file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Use debug round lengths")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(infoCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

func mode() session.Mode {
	if flagDebug {
		return session.ModeDebug
	}
	return session.ModeRelease
}

func prefsPath() string {
	if flagPrefs != "" {
		return flagPrefs
	}
	return config.DefaultPrefsPath()
}

// gameOptions builds the options shared by every front end.
func gameOptions(logger *log.Logger) (app.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return app.Options{}, err
	}

	return app.Options{
		Mode:   mode(),
		Config: cfg,
		Prefs:  config.NewFilePrefs(prefsPath()),
		Seed:   flagSeed,
		Logger: logger,
	}, nil
}

// fatal reports an error that happened before a logger exists and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
