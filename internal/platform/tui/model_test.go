package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numbers/internal/app"
	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/session"
)

func newModel(t *testing.T) Model {
	t.Helper()
	prefs := &config.MemoryPrefs{}
	if err := prefs.Save(config.Prefs{}); err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(app.Options{
		Config: config.DefaultConfig(),
		Prefs:  prefs,
		Seed:   1,
	}, Config{
		RuntimeConfig: core.RuntimeConfig{ScreenW: 160, ScreenH: 46, TickRate: 60},
		MinSize:       minSize,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelReservesFooterRow(t *testing.T) {
	m := newModel(t)
	if got := m.App().Session.Size(); got != minSize {
		t.Errorf("session size = %+v, want %+v", got, minSize)
	}
}

func TestModelClickStartsRound(t *testing.T) {
	m := newModel(t)

	// Start is the first primary entry: 600..1000 x 230..310.
	m, _ = send(t, m, tea.MouseMsg{X: 80, Y: 13, Action: tea.MouseActionMotion})
	m, _ = tick(t, m)
	if got := m.App().Session.State(); got != session.StateMenu {
		t.Fatalf("hover changed state to %v", got)
	}

	m, _ = send(t, m, tea.MouseMsg{X: 80, Y: 13, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)
	if got := m.App().Session.State(); got != session.StateGame {
		t.Errorf("state = %v, want Game", got)
	}
	if !m.App().Round.Started() {
		t.Error("round not started")
	}
}

func TestModelIgnoresOtherButtons(t *testing.T) {
	for _, btn := range []tea.MouseButton{tea.MouseButtonRight, tea.MouseButtonMiddle} {
		m := newModel(t)
		m, _ = send(t, m, tea.MouseMsg{X: 80, Y: 13, Action: tea.MouseActionRelease, Button: btn})
		m, _ = tick(t, m)
		if got := m.App().Session.State(); got != session.StateMenu {
			t.Errorf("%v release changed state to %v", btn, got)
		}
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newModel(t)

	m, _ = send(t, m, tea.MouseMsg{X: 80, Y: 13, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)
	m, _ = send(t, m, runes("b"))
	m, _ = tick(t, m)
	if got := m.App().Session.State(); got != session.StateMenu {
		t.Fatalf("back did not return to menu: %v", got)
	}

	// A second tick without input must not click Continue.
	m, _ = tick(t, m)
	if got := m.App().Session.State(); got != session.StateMenu {
		t.Errorf("stale release replayed: state %v", got)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newModel(t)

	m, cmd := send(t, m, runes("q"))
	if cmd != nil {
		t.Error("quit must wait for the frame")
	}

	m, cmd = tick(t, m)
	if cmd == nil {
		t.Fatal("no command after quit frame")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit frame did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 61})
	m, _ = tick(t, m)

	want := core.Size{W: 2000, H: 1200}
	if got := m.App().Session.Size(); got != want {
		t.Errorf("session size = %+v, want %+v", got, want)
	}
	if m.screen.Width() != 200 || m.screen.Height() != 60 {
		t.Errorf("screen = %dx%d, want 200x60", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newModel(t)

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 46 {
		t.Errorf("view has %d lines, want 46", len(lines))
	}
	if !strings.Contains(out, "Start") {
		t.Error("menu entry missing from view")
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("footer = %q", lines[len(lines)-1])
	}
}
