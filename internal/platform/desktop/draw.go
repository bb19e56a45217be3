//go:build cgo

package desktop

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/numbers/internal/app"
	"github.com/vovakirdan/numbers/internal/core"
)

var (
	colorBackground = rl.White
	colorLightGreen = rl.NewColor(144, 238, 144, 255)
)

// fills is the palette for box backgrounds.
var fills = map[core.Color]rl.Color{
	core.ColorIdle:      rl.LightGray,
	core.ColorHighlight: colorLightGreen,
	core.ColorCorrect:   rl.Green,
	core.ColorWrong:     rl.Red,
}

// inks is the palette for text and outlines.
var inks = map[core.Color]rl.Color{
	core.ColorDefault:   rl.Black,
	core.ColorIdle:      rl.DarkGray,
	core.ColorHighlight: colorLightGreen,
	core.ColorCorrect:   rl.Green,
	core.ColorWrong:     rl.Red,
	core.ColorText:      rl.White,
	core.ColorMuted:     rl.LightGray,
	core.ColorOutline:   rl.Black,
}

func drawView(v app.View, t *typography) {
	for _, b := range v.Boxes {
		drawBox(b, t)
	}
	for _, l := range v.Labels {
		drawLabel(l, v.Size, t)
	}
	if v.ShowFPS {
		rl.DrawFPS(10, 10)
	}
}

func drawBox(b app.Box, t *typography) {
	rec := rl.NewRectangle(float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H))

	if b.Fill != core.ColorDefault {
		rl.DrawRectangleRec(rec, fills[b.Fill])
	}
	if b.Outline != core.ColorDefault {
		rl.DrawRectangleLinesEx(rec, float32(max(b.Thick, 1)), inks[b.Outline])
	}
	if b.Text == "" {
		return
	}

	size := t.measure(b.Text, b.FontSize)
	c := b.Rect.Center()
	t.draw(b.Text, c.X-float64(size.X)/2, c.Y-float64(size.Y)/2, b.FontSize, inks[b.TextColor])
}

func drawLabel(l app.Label, screen core.Size, t *typography) {
	x := l.X
	switch l.Align {
	case app.AlignCenter:
		x = (screen.W - float64(t.measure(l.Text, l.FontSize).X)) / 2
	case app.AlignRight:
		x = l.X - float64(t.measure(l.Text, l.FontSize).X)
	}
	t.draw(l.Text, x, l.Y, l.FontSize, inks[l.Color])
}
