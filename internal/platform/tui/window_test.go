package tui

import (
	"testing"

	"github.com/vovakirdan/numbers/internal/core"
)

var minSize = core.Size{W: 1600, H: 900}

func TestWindowScalesCellsToMinimumPlane(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       core.Size
	}{
		{"exact", 160, 45, core.Size{W: 1600, H: 900}},
		{"small terminal", 80, 24, core.Size{W: 1600, H: 900}},
		{"large terminal", 200, 60, core.Size{W: 2000, H: 1200}},
		{"zero size", 0, 0, core.Size{W: 1600, H: 900}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.cols, tt.rows, minSize)
			if got := w.ScreenSize(); got != tt.want {
				t.Errorf("ScreenSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWindowPixelCellRoundTrip(t *testing.T) {
	w := NewWindow(80, 24, minSize)

	if got := w.Pixel(0, 0); got != (core.Vec2{X: 10, Y: 18.75}) {
		t.Errorf("Pixel(0, 0) = %+v", got)
	}

	for _, c := range [][2]int{{0, 0}, {5, 3}, {79, 23}} {
		col, row := w.Cell(w.Pixel(c[0], c[1]))
		if col != c[0] || row != c[1] {
			t.Errorf("Cell(Pixel(%d, %d)) = (%d, %d)", c[0], c[1], col, row)
		}
	}
}

func TestWindowCellRect(t *testing.T) {
	w := NewWindow(160, 45, minSize)

	tests := []struct {
		name          string
		rect          core.Rect
		x, y, wd, ht  int
	}{
		{"menu entry", core.NewRect(600, 230, 400, 80), 60, 12, 40, 4},
		{"tile", core.NewRect(100, 100, 100, 60), 10, 5, 10, 3},
		{"thin", core.NewRect(100, 100, 2, 2), 10, 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, wd, ht := w.CellRect(tt.rect)
			if x != tt.x || y != tt.y || wd != tt.wd || ht != tt.ht {
				t.Errorf("CellRect() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x, y, wd, ht, tt.x, tt.y, tt.wd, tt.ht)
			}
		})
	}
}

func TestWindowRecordsDisplayRequests(t *testing.T) {
	w := NewWindow(160, 45, minSize)
	before := w.ScreenSize()

	w.SetBorderless(true)
	w.SetSize(3840, 2160)
	w.SetFullscreen(true)

	if !w.Fullscreen() {
		t.Error("fullscreen request not recorded")
	}
	if w.ScreenSize() != before {
		t.Error("SetSize must not change the terminal plane")
	}
	if w.MonitorSize() != before {
		t.Error("monitor is the terminal itself")
	}
}
