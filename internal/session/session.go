// Package session holds the top-level game state shared by the menu and the
// round: the Menu/Game/Win/Lose state machine, difficulty, locale, display
// settings and window geometry.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/locale"
)

// Mode selects the round duration table.
type Mode int

const (
	ModeRelease Mode = iota
	ModeDebug
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeDebug {
		return "debug"
	}
	return "release"
}

// State is the top-level screen. Exactly one is active at a time.
type State int

const (
	StateMenu State = iota
	StateGame
	StateWin
	StateLose
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Settings are display toggles. They are not persisted.
type Settings struct {
	Fullscreen bool
	VSync      bool
	FPSVisible bool
}

// Window is the display the session switches between windowed and
// fullscreen mode.
type Window interface {
	SetBorderless(on bool)
	SetFullscreen(on bool)
	SetSize(w, h int)
	ScreenSize() core.Size
	MonitorSize() core.Size
}

// Repositioner lays its elements out again for a new screen size.
type Repositioner interface {
	UpdatePositions(size core.Size)
}

// MenuController is the part of the menu the session drives directly.
type MenuController interface {
	Repositioner
	InHelp() bool
	ShowPrimary()
}

// Options configure a new Session.
type Options struct {
	Mode       Mode
	Config     config.GameConfig
	Locales    *locale.Set
	Prefs      config.PrefsStore // nil keeps preferences in memory
	Size       core.Size         // Current screen size
	Fullscreen bool              // Whether the window starts fullscreen
	Logger     *log.Logger
}

// Session is the root of the game state.
type Session struct {
	mode       Mode
	state      State
	difficulty config.Difficulty
	settings   Settings
	size       core.Size

	cfg     config.GameConfig
	locales *locale.Set
	current int
	prefs   config.PrefsStore
	first   bool

	logger *log.Logger
}

// New creates a session in the Menu state. Stored preferences are applied when
// present; otherwise the session starts with defaults and FirstRun reports true.
func New(opts Options) (*Session, error) {
	if opts.Locales == nil || opts.Locales.Len() == 0 {
		return nil, errors.New("session: no locales loaded")
	}
	if opts.Prefs == nil {
		opts.Prefs = &config.MemoryPrefs{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		mode:  opts.Mode,
		state: StateMenu,
		settings: Settings{
			Fullscreen: opts.Fullscreen,
			VSync:      true,
		},
		size:    opts.Size,
		cfg:     opts.Config,
		locales: opts.Locales,
		prefs:   opts.Prefs,
		logger:  opts.Logger,
	}

	p, ok := opts.Prefs.Load()
	s.first = !ok
	if ok {
		s.difficulty = p.Difficulty
		if p.Locale < s.locales.Len() {
			s.current = p.Locale
		}
	}
	s.logger.Debug("session created", "mode", s.mode, "first_run", s.first,
		"difficulty", s.difficulty, "locale", s.Locale().Code)
	return s, nil
}

// Mode returns the duration mode.
func (s *Session) Mode() Mode { return s.mode }

// State returns the active state.
func (s *Session) State() State { return s.state }

// SetState switches state. Callers decide which transitions are legal.
func (s *Session) SetState(st State) {
	if st != s.state {
		s.logger.Debug("state change", "from", s.state, "to", st)
	}
	s.state = st
}

// FirstRun reports whether no preferences were stored when the session started.
func (s *Session) FirstRun() bool { return s.first }

// Difficulty returns the current difficulty.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// ChangeDifficulty advances the difficulty cyclically and persists it.
func (s *Session) ChangeDifficulty() {
	s.difficulty = s.difficulty.Next()
	s.SavePrefs()
}

// Settings returns the display settings.
func (s *Session) Settings() Settings { return s.settings }

// ToggleFPS flips the FPS overlay.
func (s *Session) ToggleFPS() {
	s.settings.FPSVisible = !s.settings.FPSVisible
}

// Size returns the current screen size.
func (s *Session) Size() core.Size { return s.size }

// Config returns the game tuning.
func (s *Session) Config() config.GameConfig { return s.cfg }

// Locales returns all loaded catalogs.
func (s *Session) Locales() *locale.Set { return s.locales }

// LocaleIndex returns the position of the active catalog.
func (s *Session) LocaleIndex() int { return s.current }

// Locale returns the active catalog.
func (s *Session) Locale() *locale.Catalog { return s.locales.At(s.current) }

// SetLocale activates catalog i without persisting it. The language selector
// uses it to preview the hovered language.
func (s *Session) SetLocale(i int) {
	if i < 0 || i >= s.locales.Len() {
		return
	}
	s.current = i
}

// ChangeLocale activates the next catalog, wrapping around, and persists it.
func (s *Session) ChangeLocale() {
	s.current = (s.current + 1) % s.locales.Len()
	s.SavePrefs()
}

// SavePrefs writes the difficulty and locale index. Failures are logged and
// otherwise ignored.
func (s *Session) SavePrefs() {
	p := config.Prefs{Locale: s.current, Difficulty: s.difficulty}
	if err := s.prefs.Save(p); err != nil {
		s.logger.Warn("cannot save preferences", "err", err)
		return
	}
	s.first = false
}

// Text returns the translation of key in the active locale.
func (s *Session) Text(key string) string {
	return s.Locale().Get(key)
}

// Textf formats the translation of key in the active locale.
func (s *Session) Textf(key string, args ...any) string {
	return s.Locale().Format(key, args...)
}

// RoundDuration returns the round length for the current mode and difficulty.
func (s *Session) RoundDuration() time.Duration {
	table := s.cfg.Durations.Release
	if s.mode == ModeDebug {
		table = s.cfg.Durations.Debug
	}
	return table.For(s.difficulty)
}

// HidesSolved reports whether solved tiles are drawn as plain outlines.
func (s *Session) HidesSolved() bool {
	return s.difficulty == config.DifficultyHard
}

// Resize records a new screen size and lays out menu and round again.
func (s *Session) Resize(size core.Size, menu, round Repositioner) {
	s.size = size
	menu.UpdatePositions(size)
	round.UpdatePositions(size)
}

// ToggleFullscreen flips the fullscreen flag and switches the window.
// Entering goes borderless, resizes to the monitor, then goes fullscreen.
// Leaving drops fullscreen, then borderless. The size reported by the window
// afterwards is propagated to menu and round.
func (s *Session) ToggleFullscreen(win Window, menu, round Repositioner) {
	s.settings.Fullscreen = !s.settings.Fullscreen

	if s.settings.Fullscreen {
		monitor := win.MonitorSize()
		win.SetBorderless(true)
		win.SetSize(int(monitor.W), int(monitor.H))
		win.SetFullscreen(true)
	} else {
		win.SetFullscreen(false)
		win.SetBorderless(false)
	}

	s.logger.Debug("fullscreen toggled", "on", s.settings.Fullscreen)
	s.Resize(win.ScreenSize(), menu, round)
}

// ProcessController handles the global hotkeys and window resizes.
// It runs first in every frame.
func (s *Session) ProcessController(in core.InputFrame, win Window, menu MenuController, round Repositioner) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{Quit: true}
	}

	if in.Resized {
		s.Resize(win.ScreenSize(), menu, round)
	}

	if in.Has(core.ActionFullscreen) {
		s.ToggleFullscreen(win, menu, round)
	}

	if in.Has(core.ActionBack) {
		if menu.InHelp() {
			menu.ShowPrimary()
			return core.StepResult{}
		}
		switch s.state {
		case StateGame, StateWin, StateLose:
			s.SetState(StateMenu)
		case StateMenu:
			return core.StepResult{Quit: true}
		}
	}
	return core.StepResult{}
}
