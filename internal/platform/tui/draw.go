package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/numbers/internal/app"
	"github.com/vovakirdan/numbers/internal/core"
)

// Draw paints a view into the screen. Font sizes do not apply to a terminal:
// every text is one row high. fps is shown when the view asks for it.
func Draw(s *core.Screen, w *Window, v app.View, fps int) {
	s.Clear()

	for _, b := range v.Boxes {
		drawBox(s, w, b)
	}
	for _, l := range v.Labels {
		drawLabel(s, w, l)
	}
	if v.ShowFPS {
		s.DrawText(1, 0, strconv.Itoa(fps)+" FPS", core.ColorCorrect)
	}
}

// drawBox fills a box or brackets it on its middle row, then centers its text.
func drawBox(s *core.Screen, w *Window, b app.Box) {
	x, y, width, height := w.CellRect(b.Rect)
	mid := y + (height-1)/2

	if b.Fill != core.ColorDefault {
		s.FillRect(x, y, width, height, b.Fill)
	}
	if b.Outline != core.ColorDefault {
		if height >= 3 && width >= 3 {
			s.DrawBox(x, y, width, height, b.Outline)
		} else {
			s.Set(x, mid, '[', b.Outline)
			s.Set(x+width-1, mid, ']', b.Outline)
		}
	}

	n := utf8.RuneCountInString(b.Text)
	s.DrawText(x+(width-n)/2, mid, b.Text, b.TextColor)
}

func drawLabel(s *core.Screen, w *Window, l app.Label) {
	col, row := w.Cell(core.Vec2{X: l.X, Y: l.Y})
	n := utf8.RuneCountInString(l.Text)

	switch l.Align {
	case app.AlignCenter:
		s.DrawTextCentered(row, l.Text, l.Color)
	case app.AlignRight:
		s.DrawText(col-n, row, l.Text, l.Color)
	default:
		s.DrawText(col, row, l.Text, l.Color)
	}
}
