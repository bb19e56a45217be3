// Package menu implements the menu screens: the primary list, settings,
// help and the first-run language selector.
package menu

import (
	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/round"
	"github.com/vovakirdan/numbers/internal/session"
)

// State is the menu screen being shown.
type State int

const (
	StatePrimary State = iota
	StateSettings
	StateHelp
	StateLanguageSelect
)

// String returns the screen name.
func (s State) String() string {
	switch s {
	case StatePrimary:
		return "primary"
	case StateSettings:
		return "settings"
	case StateHelp:
		return "help"
	case StateLanguageSelect:
		return "language"
	default:
		return "unknown"
	}
}

// Menu holds the menu screens and their entry geometry.
type Menu struct {
	state State
	cfg   config.MenuConfig
	size  core.Size

	primary  []Entry
	settings []Entry
	locales  []core.Button // One per catalog, in catalog order
}

// New builds the menu for the session's screen size. A first run opens the
// language selector, otherwise the primary list.
func New(s *session.Session) *Menu {
	m := &Menu{
		state:    StatePrimary,
		cfg:      s.Config().Menu,
		primary:  newEntries(primaryKinds),
		settings: newEntries(settingsKinds),
		locales:  make([]core.Button, s.Locales().Len()),
	}
	if s.FirstRun() {
		m.state = StateLanguageSelect
	}
	m.UpdatePositions(s.Size())
	return m
}

// State returns the screen being shown.
func (m *Menu) State() State { return m.state }

// InHelp reports whether the help page is shown.
func (m *Menu) InHelp() bool { return m.state == StateHelp }

// ShowPrimary returns to the primary list.
func (m *Menu) ShowPrimary() { m.state = StatePrimary }

// Primary returns the primary entries.
func (m *Menu) Primary() []Entry { return m.primary }

// Settings returns the settings entries.
func (m *Menu) Settings() []Entry { return m.settings }

// Entries returns the entries of the current screen. Help and the language
// selector have none.
func (m *Menu) Entries() []Entry {
	switch m.state {
	case StatePrimary:
		return m.primary
	case StateSettings:
		return m.settings
	default:
		return nil
	}
}

// LocaleButtons returns the language selector buttons.
func (m *Menu) LocaleButtons() []core.Button { return m.locales }

// ProcessController runs the menu for one frame. It only acts in the Menu
// session state and runs between the session and the round.
func (m *Menu) ProcessController(in core.InputFrame, s *session.Session, r *round.Round, win session.Window) core.StepResult {
	if s.State() != session.StateMenu {
		return core.StepResult{}
	}

	var res core.StepResult
	switch m.state {
	case StatePrimary:
		res = m.processPrimary(in, s, r)
	case StateSettings:
		m.processSettings(in, s, r, win)
	case StateLanguageSelect:
		m.processLanguage(in, s)
	}

	// The screen may have changed; its entries reflect this frame's pointer.
	m.TrackHover(in.Pointer)
	return res
}

// TrackHover recomputes hover for the screen being shown.
func (m *Menu) TrackHover(pointer core.Vec2) {
	track(m.Entries(), pointer)
	if m.state == StateLanguageSelect {
		for i := range m.locales {
			m.locales[i].Track(pointer)
		}
	}
}

func (m *Menu) processPrimary(in core.InputFrame, s *session.Session, r *round.Round) core.StepResult {
	m.syncContinue(r)

	picked, ok := pick(m.primary, in)
	if !ok {
		return core.StepResult{}
	}

	switch picked {
	case KindStart:
		s.SetState(session.StateGame)
		r.Start(s.RoundDuration())
		m.syncContinue(r)
	case KindContinue:
		r.Resume(s)
	case KindSettings:
		m.state = StateSettings
	case KindHelp:
		m.state = StateHelp
	case KindExit:
		return core.StepResult{Quit: true}
	}
	return core.StepResult{}
}

func (m *Menu) processSettings(in core.InputFrame, s *session.Session, r *round.Round, win session.Window) {
	picked, ok := pick(m.settings, in)
	if !ok {
		return
	}

	switch picked {
	case KindDifficulty:
		s.ChangeDifficulty()
	case KindLanguage:
		s.ChangeLocale()
	case KindFullscreen:
		s.ToggleFullscreen(win, m, r)
	case KindToggleFPS:
		s.ToggleFPS()
	case KindBack:
		m.state = StatePrimary
	}
}

// processLanguage previews the hovered language and keeps the clicked one.
func (m *Menu) processLanguage(in core.InputFrame, s *session.Session) {
	for i := range m.locales {
		if !m.locales[i].Track(in.Pointer) {
			continue
		}
		s.SetLocale(i)
		if in.Released {
			s.SavePrefs()
			m.locales[i].Reset()
			m.state = StatePrimary
			return
		}
	}
}

// syncContinue adds the Continue entry while a round can be resumed and
// removes it once the round is over.
func (m *Menu) syncContinue(r *round.Round) {
	want := r.Started() && !r.IsOver()
	if want == (len(m.primary) == len(fullPrimaryKinds)) {
		return
	}
	if want {
		m.primary = newEntries(fullPrimaryKinds)
	} else {
		m.primary = newEntries(primaryKinds)
	}
	m.layout(m.primary)
}

// track recomputes hover for every entry and returns the hovered one.
func track(entries []Entry, pointer core.Vec2) (Kind, bool) {
	var (
		hovered Kind
		found   bool
	)
	for i := range entries {
		if entries[i].Track(pointer) && !found {
			hovered, found = entries[i].Kind, true
		}
	}
	return hovered, found
}

// pick returns the entry released over this frame.
func pick(entries []Entry, in core.InputFrame) (Kind, bool) {
	k, ok := track(entries, in.Pointer)
	return k, ok && in.Released
}

// UpdatePositions lays every screen out again for size.
func (m *Menu) UpdatePositions(size core.Size) {
	m.size = size
	m.layout(m.primary)
	m.layout(m.settings)

	c := m.cfg
	n := float64(len(m.locales))
	row := n*(c.LocaleWidth+c.LocaleGap) - c.LocaleGap
	for i := range m.locales {
		m.locales[i].Rect = core.NewRect(
			(size.W-row)/2+float64(i)*(c.LocaleWidth+c.LocaleGap),
			(size.H-c.LocaleHeight)/2,
			c.LocaleWidth,
			c.LocaleHeight,
		)
	}
}

// layout stacks entries vertically, centered on the screen. Entries with a
// description are pushed right to leave room for it.
func (m *Menu) layout(entries []Entry) {
	c := m.cfg
	n := float64(len(entries))
	total := n*c.ItemHeight + (n-1)*c.ItemGap
	top := (m.size.H - total) / 2

	for i := range entries {
		x := (m.size.W - c.ItemWidth) / 2
		if entries[i].Kind.HasDescription() {
			x = m.size.W*7/8 - c.ItemWidth
		}
		entries[i].Rect = core.NewRect(x, top+float64(i)*(c.ItemHeight+c.ItemGap), c.ItemWidth, c.ItemHeight)
	}
}

// DescriptionX returns where side descriptions start.
func (m *Menu) DescriptionX() float64 {
	return m.size.W / 8
}
