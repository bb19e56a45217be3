package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/locale"
	"github.com/vovakirdan/numbers/internal/menu"
	"github.com/vovakirdan/numbers/internal/session"
)

// Font sizes in pixels.
const (
	FontMenu   = 54
	FontTile   = 48
	FontButton = 48
	FontTimer  = 48
	FontResult = 60
	FontScore  = 36
	FontTitle  = 48
)

// Align anchors a label horizontally on its X coordinate.
type Align int

const (
	AlignLeft   Align = iota
	AlignCenter       // X is ignored, the label is centered on the screen
	AlignRight        // X is the right edge
)

// Box is a rectangle with optional centered text.
type Box struct {
	Rect      core.Rect
	Fill      core.Color // ColorDefault draws no fill
	Outline   core.Color // ColorDefault draws no outline
	Thick     float64    // Outline thickness
	Text      string
	TextColor core.Color
	FontSize  float64
}

// Label is free-standing text. Y is the top of the text.
type Label struct {
	X, Y     float64
	Align    Align
	Text     string
	Color    core.Color
	FontSize float64
}

// View is everything a renderer draws for one frame.
type View struct {
	Size    core.Size
	Boxes   []Box
	Labels  []Label
	ShowFPS bool
}

// View describes the current frame. It reads state only.
func (a *App) View() View {
	s := a.Session
	v := View{
		Size:    s.Size(),
		ShowFPS: s.Settings().FPSVisible,
	}

	switch s.State() {
	case session.StateMenu:
		a.menuView(&v)
	case session.StateGame:
		a.gameView(&v)
	case session.StateWin:
		v.Labels = append(v.Labels, Label{
			Y: v.Size.H/2 - 30, Align: AlignCenter, Text: s.Text(locale.KeyWin),
			Color: core.ColorCorrect, FontSize: FontResult,
		})
		a.resultButtons(&v)
	case session.StateLose:
		v.Labels = append(v.Labels, Label{
			Y: v.Size.H/2 - 30, Align: AlignCenter, Text: s.Textf(locale.KeyLose, a.Round.Score(), a.Round.Fails()),
			Color: core.ColorWrong, FontSize: FontResult,
		})
		a.resultButtons(&v)
	}
	return v
}

func (a *App) menuView(v *View) {
	s, m := a.Session, a.Menu

	switch m.State() {
	case menu.StatePrimary, menu.StateSettings:
		for _, e := range m.Entries() {
			v.Boxes = append(v.Boxes, Box{
				Rect:      e.Rect,
				Fill:      e.Color(),
				Text:      menu.Label(e.Kind, s),
				TextColor: core.ColorDefault,
				FontSize:  FontMenu,
			})
			if desc := menu.Description(e.Kind, s); desc != "" {
				v.Labels = append(v.Labels, Label{
					X:        m.DescriptionX(),
					Y:        e.Rect.Y + (e.Rect.H-FontMenu)/2,
					Text:     desc,
					Color:    core.ColorDefault,
					FontSize: FontMenu,
				})
			}
		}

	case menu.StateHelp:
		y := (v.Size.H - menu.HelpHeight()) / 2
		for _, row := range menu.HelpRows {
			v.Labels = append(v.Labels, Label{
				Y: y, Align: AlignCenter, Text: s.Text(row.Key),
				Color: core.ColorDefault, FontSize: row.FontSize,
			})
			y += row.PaddingBottom
		}

	case menu.StateLanguageSelect:
		buttons := m.LocaleButtons()
		for i, b := range buttons {
			outline := core.ColorMuted
			if b.Hovered {
				outline = core.ColorHighlight
			}
			v.Boxes = append(v.Boxes, Box{
				Rect:      b.Rect,
				Outline:   outline,
				Thick:     10,
				Text:      s.Locales().At(i).Name,
				TextColor: core.ColorDefault,
				FontSize:  FontButton,
			})
		}
		if len(buttons) > 0 {
			v.Labels = append(v.Labels, Label{
				Y:        buttons[0].Rect.Y - 80,
				Align:    AlignCenter,
				Text:     s.Text(locale.KeyChooseLanguage) + " " + s.Locale().Name,
				Color:    core.ColorCorrect,
				FontSize: FontTitle,
			})
		}
	}
}

func (a *App) gameView(v *View) {
	s, r := a.Session, a.Round
	hide := s.HidesSolved()
	numbers := r.Numbers()

	for i, rect := range r.Tiles() {
		box := Box{
			Rect:      rect,
			TextColor: core.ColorDefault,
			FontSize:  FontTile,
		}
		if i < len(numbers) {
			box.Text = strconv.Itoa(numbers[i])
		}

		switch {
		case r.IsCorrect(i) && hide:
			box.Outline, box.Thick = core.ColorOutline, 2
		case r.IsCorrect(i):
			box.Fill, box.TextColor = core.ColorCorrect, core.ColorText
		case i == r.WrongIndex():
			box.Fill, box.TextColor = core.ColorWrong, core.ColorText
		case i == r.ActiveIndex():
			box.Fill = core.ColorHighlight
		default:
			box.Outline, box.Thick = core.ColorOutline, 2
		}
		v.Boxes = append(v.Boxes, box)
	}

	v.Boxes = append(v.Boxes, buttonBox(r.Exit, s.Text(locale.KeyExit)))
	v.Labels = append(v.Labels,
		Label{
			X: v.Size.W - 16, Y: 10, Align: AlignRight, Text: FormatClock(r.Remaining()),
			Color: core.ColorDefault, FontSize: FontTimer,
		},
		Label{
			Y: 24, Align: AlignCenter, Text: s.Textf(locale.KeyScore, r.Score()),
			Color: core.ColorCorrect, FontSize: FontScore,
		},
	)
}

func (a *App) resultButtons(v *View) {
	v.Boxes = append(v.Boxes,
		buttonBox(a.Round.TryAgain, a.Session.Text(locale.KeyTryAgain)),
		buttonBox(a.Round.ResultExit, a.Session.Text(locale.KeyExit)),
	)
}

// buttonBox draws a round button: outlined at rest, filled when hovered.
func buttonBox(b core.Button, text string) Box {
	box := Box{
		Rect:      b.Rect,
		Text:      text,
		TextColor: core.ColorDefault,
		FontSize:  FontButton,
	}
	if b.Hovered {
		box.Fill = core.ColorHighlight
	} else {
		box.Outline, box.Thick = core.ColorOutline, 1
	}
	return box
}

// FormatClock renders a duration as MM:SS, truncating to whole seconds.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
