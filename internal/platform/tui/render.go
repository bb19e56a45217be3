package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numbers/internal/core"
)

// Theme maps semantic colours to terminal colours.
type Theme struct {
	Foreground map[core.Color]lipgloss.Color
	Background map[core.Color]lipgloss.Color
	Footer     lipgloss.Style
}

// DefaultTheme returns the default palette.
func DefaultTheme() Theme {
	return Theme{
		Foreground: map[core.Color]lipgloss.Color{
			core.ColorIdle:      lipgloss.Color("250"),
			core.ColorHighlight: lipgloss.Color("120"), // Light green
			core.ColorCorrect:   lipgloss.Color("46"),
			core.ColorWrong:     lipgloss.Color("196"),
			core.ColorText:      lipgloss.Color("231"),
			core.ColorMuted:     lipgloss.Color("240"),
			core.ColorOutline:   lipgloss.Color("245"),
		},
		Background: map[core.Color]lipgloss.Color{
			core.ColorIdle:      lipgloss.Color("238"),
			core.ColorHighlight: lipgloss.Color("71"),
			core.ColorCorrect:   lipgloss.Color("28"),
			core.ColorWrong:     lipgloss.Color("160"),
		},
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Style returns the style of a cell.
func (t Theme) Style(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := t.Foreground[c.Color]; ok {
		style = style.Foreground(fg)
	}
	if bg, ok := t.Background[c.Bg]; ok {
		style = style.Background(bg)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours share one styled run.
func RenderScreen(s *core.Screen, t Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(start).Render(run.String()))
		}
	}
	return sb.String()
}
