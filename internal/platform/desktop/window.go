//go:build cgo

// Package desktop runs the game in a native raylib window.
package desktop

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/numbers/internal/core"
)

// Window drives the raylib window. Toggles are no-ops when the window is
// already in the requested mode.
type Window struct{}

// SetBorderless switches borderless windowed mode.
func (Window) SetBorderless(on bool) {
	if rl.IsWindowState(rl.FlagBorderlessWindowedMode) != on {
		rl.ToggleBorderlessWindowed()
	}
}

// SetFullscreen switches exclusive fullscreen.
func (Window) SetFullscreen(on bool) {
	if rl.IsWindowFullscreen() != on {
		rl.ToggleFullscreen()
	}
}

// SetSize resizes the window.
func (Window) SetSize(w, h int) {
	rl.SetWindowSize(w, h)
}

// ScreenSize returns the drawable size.
func (Window) ScreenSize() core.Size {
	return core.Size{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}
}

// MonitorSize returns the size of the monitor the window is on.
func (Window) MonitorSize() core.Size {
	m := rl.GetCurrentMonitor()
	return core.Size{W: float64(rl.GetMonitorWidth(m)), H: float64(rl.GetMonitorHeight(m))}
}

// sampleInput reads the input of one frame.
func sampleInput() core.InputFrame {
	in := core.NewInputFrame()

	p := rl.GetMousePosition()
	in.Pointer = core.Vec2{X: float64(p.X), Y: float64(p.Y)}
	in.Released = rl.IsMouseButtonReleased(rl.MouseButtonLeft)
	in.Resized = rl.IsWindowResized()

	if rl.IsKeyReleased(rl.KeyF1) {
		in.Set(core.ActionFullscreen)
	}
	if rl.IsKeyReleased(rl.KeyEscape) {
		in.Set(core.ActionBack)
	}
	return in
}
