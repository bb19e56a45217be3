package tui

import (
	"math"

	"github.com/vovakirdan/numbers/internal/core"
)

// Minimum cell size in virtual pixels.
const (
	CellW = 10
	CellH = 20
)

// Window maps the terminal grid onto the virtual pixel plane the game lays
// itself out on. Cells grow on small terminals so the plane never drops below
// the configured window size.
//
// A terminal cannot change its own display mode, so fullscreen and borderless
// requests are only recorded.
type Window struct {
	cols, rows   int
	cellW, cellH float64
	min          core.Size

	fullscreen bool
	borderless bool
}

// NewWindow creates a window for a cols×rows terminal area.
func NewWindow(cols, rows int, min core.Size) *Window {
	w := &Window{min: min}
	w.Resize(cols, rows)
	return w
}

// Resize adopts a new terminal area.
func (w *Window) Resize(cols, rows int) {
	w.cols = max(cols, 1)
	w.rows = max(rows, 1)
	w.cellW = math.Max(CellW, w.min.W/float64(w.cols))
	w.cellH = math.Max(CellH, w.min.H/float64(w.rows))
}

// Cols returns the terminal width in cells.
func (w *Window) Cols() int { return w.cols }

// Rows returns the terminal height in cells.
func (w *Window) Rows() int { return w.rows }

// SetBorderless records the request.
func (w *Window) SetBorderless(on bool) { w.borderless = on }

// SetFullscreen records the request.
func (w *Window) SetFullscreen(on bool) { w.fullscreen = on }

// SetSize is ignored: the terminal decides its own size.
func (w *Window) SetSize(int, int) {}

// Fullscreen reports the last fullscreen request.
func (w *Window) Fullscreen() bool { return w.fullscreen }

// ScreenSize returns the virtual pixel size of the terminal area.
func (w *Window) ScreenSize() core.Size {
	return core.Size{W: float64(w.cols) * w.cellW, H: float64(w.rows) * w.cellH}
}

// MonitorSize is the screen size: the terminal is the whole display.
func (w *Window) MonitorSize() core.Size {
	return w.ScreenSize()
}

// Pixel returns the virtual pixel at the center of a cell.
func (w *Window) Pixel(col, row int) core.Vec2 {
	return core.Vec2{
		X: (float64(col) + 0.5) * w.cellW,
		Y: (float64(row) + 0.5) * w.cellH,
	}
}

// Cell returns the cell containing a virtual pixel.
func (w *Window) Cell(p core.Vec2) (col, row int) {
	return int(math.Floor(p.X / w.cellW)), int(math.Floor(p.Y / w.cellH))
}

// CellRect returns the cells covered by a rectangle. Every non-empty
// rectangle covers at least one cell.
func (w *Window) CellRect(r core.Rect) (x, y, width, height int) {
	x = int(math.Round(r.X / w.cellW))
	y = int(math.Round(r.Y / w.cellH))
	width = max(int(math.Round(r.Right()/w.cellW))-x, 1)
	height = max(int(math.Round(r.Bottom()/w.cellH))-y, 1)
	return x, y, width, height
}
