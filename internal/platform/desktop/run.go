//go:build cgo

package desktop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/numbers/internal/app"
)

// Options configure the desktop window.
type Options struct {
	Game      app.Options
	FontPath  string // Empty tries assets/fonts/Arimo-Regular.ttf, then the built-in font
	IconPath  string
	TargetFPS int // 0 leaves pacing to vsync
}

// Run opens the window and plays until it is closed or the game quits.
func Run(opts Options) error {
	logger := opts.Game.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Game.Config.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(0) // Escape is Back
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	if opts.IconPath != "" {
		if icon := rl.LoadImage(opts.IconPath); icon != nil && icon.Width > 0 {
			rl.SetWindowIcon(*icon)
			rl.UnloadImage(icon)
		} else {
			logger.Warn("cannot load window icon", "path", opts.IconPath)
		}
	}

	win := Window{}
	if opts.Game.Fullscreen {
		monitor := win.MonitorSize()
		win.SetBorderless(true)
		win.SetSize(int(monitor.W), int(monitor.H))
		win.SetFullscreen(true)
	}
	opts.Game.Size = win.ScreenSize()

	a, err := app.New(opts.Game)
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}

	t, err := loadTypography(opts.FontPath)
	if err != nil {
		return err
	}
	defer t.unload()
	logger.Debug("window ready", "size", opts.Game.Size, "font_spacing", t.spacing)

	for !rl.WindowShouldClose() {
		if res := a.Frame(sampleInput(), win); res.Quit {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorBackground)
		drawView(a.View(), t)
		rl.EndDrawing()
	}
	return nil
}
