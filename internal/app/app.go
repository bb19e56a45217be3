// Package app wires the session, menu and round together and runs them once
// per frame. Every front end drives the game through App.
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/locale"
	"github.com/vovakirdan/numbers/internal/menu"
	"github.com/vovakirdan/numbers/internal/round"
	"github.com/vovakirdan/numbers/internal/session"
	"github.com/vovakirdan/numbers/internal/timer"
)

// Options configure a new App.
type Options struct {
	Mode       session.Mode
	Config     config.GameConfig
	Locales    *locale.Set // nil loads the embedded catalogs
	Prefs      config.PrefsStore
	Size       core.Size // Screen size at start-up
	Fullscreen bool      // Whether the window starts fullscreen
	Seed       int64
	Clock      timer.Clock
	Logger     *log.Logger
}

// App owns the three controllers.
type App struct {
	Session *session.Session
	Menu    *menu.Menu
	Round   *round.Round

	logger *log.Logger
}

// New loads the locales if needed and builds the controllers.
func New(opts Options) (*App, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Locales == nil {
		locales, err := locale.Load()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		opts.Locales = locales
	}

	s, err := session.New(session.Options{
		Mode:       opts.Mode,
		Config:     opts.Config,
		Locales:    opts.Locales,
		Prefs:      opts.Prefs,
		Size:       opts.Size,
		Fullscreen: opts.Fullscreen,
		Logger:     opts.Logger.WithPrefix("session"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	r := round.New(opts.Config.Grid, opts.Size, round.Options{
		Buttons: opts.Config.Buttons,
		Seed:    opts.Seed,
		Clock:   opts.Clock,
		Logger:  opts.Logger.WithPrefix("round"),
	})

	return &App{
		Session: s,
		Menu:    menu.New(s),
		Round:   r,
		logger:  opts.Logger,
	}, nil
}

// Frame runs Session, Menu and Round against one input frame, in that order,
// so a transition made earlier in the frame is seen by the later stages.
// It stops as soon as a controller asks to quit.
func (a *App) Frame(in core.InputFrame, win session.Window) core.StepResult {
	if res := a.Session.ProcessController(in, win, a.Menu, a.Round); res.Quit {
		return res
	}
	if res := a.Menu.ProcessController(in, a.Session, a.Round, win); res.Quit {
		return res
	}
	res := a.Round.ProcessController(in, a.Session)

	// The round can hand over to the menu after the menu ran.
	if a.Session.State() == session.StateMenu {
		a.Menu.TrackHover(in.Pointer)
	}
	return res
}

// Resize lays everything out for a new screen size without a resize event.
// Front ends call it once the window has its initial size.
func (a *App) Resize(size core.Size) {
	a.Session.Resize(size, a.Menu, a.Round)
}
