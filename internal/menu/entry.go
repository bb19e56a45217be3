package menu

import (
	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/locale"
	"github.com/vovakirdan/numbers/internal/session"
)

// Kind identifies a menu command.
type Kind int

const (
	KindStart Kind = iota
	KindContinue
	KindSettings
	KindHelp
	KindExit
	KindDifficulty
	KindLanguage
	KindFullscreen
	KindToggleFPS
	KindBack
)

// kindInfo is the UI metadata of a command. Entries with a description show
// their current value on the button and the description beside it.
type kindInfo struct {
	label       string
	description string
}

var kinds = map[Kind]kindInfo{
	KindStart:      {label: locale.KeyStart},
	KindContinue:   {label: locale.KeyContinue},
	KindSettings:   {label: locale.KeySettings},
	KindHelp:       {label: locale.KeyHelp},
	KindExit:       {label: locale.KeyExit},
	KindDifficulty: {description: locale.KeyDifficulty},
	KindLanguage:   {description: locale.KeyLanguage},
	KindFullscreen: {description: locale.KeyFullscreen},
	KindToggleFPS:  {description: locale.KeyToggleFPS},
	KindBack:       {label: locale.KeyBack},
}

// LabelKey returns the string key of a fixed button label, or "".
func (k Kind) LabelKey() string { return kinds[k].label }

// DescriptionKey returns the string key of the side description, or "".
func (k Kind) DescriptionKey() string { return kinds[k].description }

// HasDescription reports whether the entry carries a side description.
func (k Kind) HasDescription() bool { return kinds[k].description != "" }

var (
	primaryKinds     = []Kind{KindStart, KindSettings, KindHelp, KindExit}
	fullPrimaryKinds = []Kind{KindStart, KindContinue, KindSettings, KindHelp, KindExit}
	settingsKinds    = []Kind{KindDifficulty, KindLanguage, KindFullscreen, KindToggleFPS, KindBack}
)

// Entry is one clickable menu item.
type Entry struct {
	core.Button
	Kind Kind
}

func newEntries(list []Kind) []Entry {
	entries := make([]Entry, len(list))
	for i, k := range list {
		entries[i].Kind = k
	}
	return entries
}

// Label returns the text drawn on the entry's button.
func Label(k Kind, s *session.Session) string {
	switch k {
	case KindDifficulty:
		return s.Text(DifficultyKey(s.Difficulty()))
	case KindLanguage:
		return s.Locale().Name
	case KindFullscreen:
		return toggleLabel(s, s.Settings().Fullscreen)
	case KindToggleFPS:
		return toggleLabel(s, s.Settings().FPSVisible)
	default:
		return s.Text(k.LabelKey())
	}
}

// Description returns the side text of the entry, or "".
func Description(k Kind, s *session.Session) string {
	if !k.HasDescription() {
		return ""
	}
	return s.Text(k.DescriptionKey())
}

// toggleLabel names the action the button performs, not the current state.
func toggleLabel(s *session.Session, on bool) string {
	if on {
		return s.Text(locale.KeyDisable)
	}
	return s.Text(locale.KeyEnable)
}

// DifficultyKey returns the string key of a difficulty name.
func DifficultyKey(d config.Difficulty) string {
	switch d {
	case config.DifficultyMedium:
		return locale.KeyMedium
	case config.DifficultyHard:
		return locale.KeyHard
	default:
		return locale.KeyEasy
	}
}

// HelpRow is one line of the help page.
type HelpRow struct {
	Key           string
	FontSize      float64
	PaddingBottom float64
}

// HelpRows is the help page, top to bottom.
var HelpRows = []HelpRow{
	{locale.KeyHelpTitle1, 32, 64},
	{locale.KeyHelpText1, 24, 36},
	{locale.KeyHelpText2, 24, 36},
	{locale.KeyHelpText31, 24, 50},
	{locale.KeyHelpText32, 24, 64},
	{locale.KeyHelpTitle2, 32, 64},
	{locale.KeyHelpText4, 24, 36},
	{locale.KeyHelpText5, 24, 36},
	{locale.KeyHelpText6, 24, 100},
	{locale.KeyHelpTitle3, 32, 0},
}

// HelpHeight returns the vertical extent of the help page.
func HelpHeight() float64 {
	var h float64
	for _, row := range HelpRows {
		h += row.PaddingBottom
	}
	return h + HelpRows[len(HelpRows)-1].FontSize
}
