//go:build cgo

package desktop

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Loaded fonts are rasterized large and scaled down when drawn.
const fontBaseSize = 200

var fontCandidates = []string{
	filepath.Join("assets", "fonts", "Arimo-Regular.ttf"),
}

type typography struct {
	font    rl.Font
	spacing float32
	owned   bool
}

// loadTypography loads path, or the first readable default candidate when
// path is empty. The built-in raylib font is used when no candidate loads; it
// needs wider spacing. A font requested by path must load.
func loadTypography(path string) (*typography, error) {
	if path != "" {
		font, ok := loadFont(path)
		if !ok {
			return nil, fmt.Errorf("desktop: cannot load font %s", path)
		}
		return &typography{font: font, spacing: 1, owned: true}, nil
	}

	for _, p := range fontCandidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if font, ok := loadFont(p); ok {
			return &typography{font: font, spacing: 1, owned: true}, nil
		}
	}
	return &typography{font: rl.GetFontDefault(), spacing: 5}, nil
}

func loadFont(path string) (rl.Font, bool) {
	codepoints := glyphs()
	font := rl.LoadFontEx(path, fontBaseSize, codepoints, int32(len(codepoints)))
	if font.Texture.ID == 0 {
		return rl.Font{}, false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// glyphs returns printable ASCII and the Cyrillic block.
func glyphs() []rune {
	var rs []rune
	for r := rune(0x20); r <= 0x7e; r++ {
		rs = append(rs, r)
	}
	for r := rune(0x400); r <= 0x4ff; r++ {
		rs = append(rs, r)
	}
	return rs
}

func (t *typography) unload() {
	if t.owned && t.font.Texture.ID != 0 {
		rl.UnloadFont(t.font)
	}
}

func (t *typography) measure(text string, size float64) rl.Vector2 {
	return rl.MeasureTextEx(t.font, text, float32(size), t.spacing)
}

func (t *typography) draw(text string, x, y, size float64, clr rl.Color) {
	rl.DrawTextEx(t.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), t.spacing, clr)
}
