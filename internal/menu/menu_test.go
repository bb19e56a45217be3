package menu

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/locale"
	"github.com/vovakirdan/numbers/internal/round"
	"github.com/vovakirdan/numbers/internal/session"
	"github.com/vovakirdan/numbers/internal/timer"
)

var screen = core.Size{W: 1600, H: 900}

type fakeWindow struct {
	screen core.Size
	calls  int
}

func (w *fakeWindow) SetBorderless(bool) { w.calls++ }
func (w *fakeWindow) SetFullscreen(on bool) {
	w.calls++
	if !on {
		w.screen = screen
	}
}
func (w *fakeWindow) SetSize(width, height int) {
	w.calls++
	w.screen = core.Size{W: float64(width), H: float64(height)}
}
func (w *fakeWindow) ScreenSize() core.Size  { return w.screen }
func (w *fakeWindow) MonitorSize() core.Size { return core.Size{W: 1920, H: 1080} }

type fixture struct {
	m     *Menu
	s     *session.Session
	r     *round.Round
	win   *fakeWindow
	prefs *config.MemoryPrefs
	clock *timer.ManualClock
}

func newFixture(t *testing.T, firstRun bool) *fixture {
	t.Helper()
	locales, err := locale.Load()
	if err != nil {
		t.Fatal(err)
	}
	prefs := &config.MemoryPrefs{}
	if !firstRun {
		if err := prefs.Save(config.Prefs{}); err != nil {
			t.Fatal(err)
		}
	}
	s, err := session.New(session.Options{
		Config:  config.DefaultConfig(),
		Locales: locales,
		Prefs:   prefs,
		Size:    screen,
	})
	if err != nil {
		t.Fatal(err)
	}
	clock := timer.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	r := round.New(s.Config().Grid, screen, round.Options{Seed: 7, Clock: clock})

	return &fixture{
		m:     New(s),
		s:     s,
		r:     r,
		win:   &fakeWindow{screen: screen},
		prefs: prefs,
		clock: clock,
	}
}

func (f *fixture) step(in core.InputFrame) core.StepResult {
	return f.m.ProcessController(in, f.s, f.r, f.win)
}

func (f *fixture) hover(p core.Vec2) core.StepResult {
	in := core.NewInputFrame()
	in.Pointer = p
	return f.step(in)
}

func (f *fixture) click(p core.Vec2) core.StepResult {
	in := core.NewInputFrame()
	in.Pointer = p
	in.Released = true
	return f.step(in)
}

func (f *fixture) clickKind(t *testing.T, k Kind) core.StepResult {
	t.Helper()
	for _, e := range f.m.Entries() {
		if e.Kind == k {
			return f.click(e.Rect.Center())
		}
	}
	t.Fatalf("no entry of kind %d on %v", k, f.m.State())
	return core.StepResult{}
}

func kindsOf(entries []Entry) []Kind {
	out := make([]Kind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

func TestInitialState(t *testing.T) {
	if got := newFixture(t, true).m.State(); got != StateLanguageSelect {
		t.Errorf("first run State() = %v, expected language", got)
	}
	f := newFixture(t, false)
	if got := f.m.State(); got != StatePrimary {
		t.Errorf("State() = %v, expected primary", got)
	}
	if got := kindsOf(f.m.Primary()); !reflect.DeepEqual(got, primaryKinds) {
		t.Errorf("primary entries = %v", got)
	}
}

func TestHoverClearsWhenPointerLeaves(t *testing.T) {
	f := newFixture(t, false)

	f.hover(f.m.Primary()[1].Rect.Center())
	if !f.m.Primary()[1].Hovered {
		t.Fatal("entry under the pointer should be highlighted")
	}
	for i, e := range f.m.Primary() {
		if i != 1 && e.Hovered {
			t.Errorf("entry %d highlighted without the pointer", i)
		}
	}

	f.hover(core.Vec2{X: 5, Y: 5})
	for i, e := range f.m.Primary() {
		if e.Hovered || e.Color() != core.ColorIdle {
			t.Errorf("entry %d still highlighted after the pointer left", i)
		}
	}
}

func TestStartAddsContinueUntilRoundEnds(t *testing.T) {
	f := newFixture(t, false)

	f.clickKind(t, KindStart)
	if f.s.State() != session.StateGame || !f.r.Started() {
		t.Fatal("Start should begin a round")
	}
	if got := kindsOf(f.m.Primary()); !reflect.DeepEqual(got, fullPrimaryKinds) {
		t.Fatalf("primary entries after Start = %v", got)
	}

	// Back to the menu mid-round and continue.
	f.s.SetState(session.StateMenu)
	f.clickKind(t, KindContinue)
	if f.s.State() != session.StateGame {
		t.Errorf("Continue should resume the round, state = %v", f.s.State())
	}

	// Lose the round, then return to the menu.
	idle := core.NewInputFrame()
	f.clock.Advance(time.Second)
	f.r.ProcessController(idle, f.s)
	f.clock.Advance(time.Hour)
	f.r.ProcessController(idle, f.s)
	if f.s.State() != session.StateLose {
		t.Fatalf("round should be lost, state = %v", f.s.State())
	}
	f.s.SetState(session.StateMenu)
	f.hover(core.Vec2{})

	if got := kindsOf(f.m.Primary()); !reflect.DeepEqual(got, primaryKinds) {
		t.Errorf("primary entries after the round ended = %v", got)
	}
}

func TestPrimaryNavigation(t *testing.T) {
	f := newFixture(t, false)

	f.clickKind(t, KindHelp)
	if !f.m.InHelp() {
		t.Fatal("Help should open the help page")
	}
	f.m.ShowPrimary()

	f.clickKind(t, KindSettings)
	if f.m.State() != StateSettings {
		t.Fatal("Settings should open the settings list")
	}
	f.clickKind(t, KindBack)
	if f.m.State() != StatePrimary {
		t.Fatal("Back should return to the primary list")
	}

	if res := f.clickKind(t, KindExit); !res.Quit {
		t.Error("Exit should quit")
	}
}

func TestSettingsActions(t *testing.T) {
	f := newFixture(t, false)
	f.clickKind(t, KindSettings)

	f.clickKind(t, KindDifficulty)
	if f.s.Difficulty() != config.DifficultyMedium {
		t.Errorf("Difficulty() = %v, expected Medium", f.s.Difficulty())
	}
	if stored, _ := f.prefs.Load(); stored.Difficulty != config.DifficultyMedium {
		t.Error("difficulty change should be persisted")
	}

	f.clickKind(t, KindLanguage)
	if f.s.LocaleIndex() != 1 {
		t.Errorf("LocaleIndex() = %d, expected 1", f.s.LocaleIndex())
	}

	f.clickKind(t, KindToggleFPS)
	if !f.s.Settings().FPSVisible {
		t.Error("ToggleFPS should show the FPS overlay")
	}

	f.clickKind(t, KindFullscreen)
	if !f.s.Settings().Fullscreen || f.win.calls != 3 {
		t.Errorf("Fullscreen should switch the window, calls = %d", f.win.calls)
	}
	// Entries follow the new screen size.
	if got := f.m.Settings()[0].Rect.X; got != 1920*7/8-400 {
		t.Errorf("settings entry x = %v after fullscreen", got)
	}
}

func TestLanguageSelectPreviewAndPick(t *testing.T) {
	f := newFixture(t, true)
	uk := f.m.LocaleButtons()[1].Rect.Center()

	f.hover(uk)
	if f.s.LocaleIndex() != 1 {
		t.Errorf("hover should preview locale 1, got %d", f.s.LocaleIndex())
	}
	if _, ok := f.prefs.Load(); ok {
		t.Error("preview should not persist")
	}

	f.click(uk)
	if f.m.State() != StatePrimary {
		t.Errorf("State() = %v, expected primary", f.m.State())
	}
	if stored, ok := f.prefs.Load(); !ok || stored.Locale != 1 {
		t.Errorf("picked locale not stored: %+v %v", stored, ok)
	}
	if f.s.FirstRun() {
		t.Error("picking a language ends the first run")
	}
}

func TestTrackHoverWithoutFrame(t *testing.T) {
	f := newFixture(t, false)
	start := f.m.Primary()[0].Rect.Center()
	f.hover(start)

	// Hover is refreshed even when the controller did not run.
	f.m.TrackHover(core.Vec2{X: -1, Y: -1})
	for _, e := range f.m.Entries() {
		if e.Hovered {
			t.Errorf("entry %d still hovered", e.Kind)
		}
	}

	f = newFixture(t, true)
	uk := f.m.LocaleButtons()[1].Rect.Center()
	f.m.TrackHover(uk)
	if !f.m.LocaleButtons()[1].Hovered || f.m.LocaleButtons()[0].Hovered {
		t.Error("TrackHover should follow the pointer on the language selector")
	}
}

func TestInactiveOutsideMenuState(t *testing.T) {
	f := newFixture(t, false)
	f.s.SetState(session.StateGame)

	res := f.clickKind(t, KindExit)
	if res.Quit || f.m.Primary()[3].Hovered {
		t.Error("menu should ignore input outside the Menu state")
	}
}

func TestLayout(t *testing.T) {
	f := newFixture(t, false)

	// 4 entries: 4*80 + 3*40 = 440 tall, top at 230.
	for i, e := range f.m.Primary() {
		want := core.NewRect(600, 230+float64(i)*120, 400, 80)
		if e.Rect != want {
			t.Errorf("primary[%d] = %+v, expected %+v", i, e.Rect, want)
		}
	}

	// 5 entries: 5*80 + 4*40 = 560 tall, top at 170.
	for i, e := range f.m.Settings() {
		x := 1000.0
		if e.Kind == KindBack {
			x = 600
		}
		want := core.NewRect(x, 170+float64(i)*120, 400, 80)
		if e.Rect != want {
			t.Errorf("settings[%d] = %+v, expected %+v", i, e.Rect, want)
		}
	}
	if f.m.DescriptionX() != 200 {
		t.Errorf("DescriptionX() = %v", f.m.DescriptionX())
	}

	// Two locale tiles of 200 with a 100 gap: row of 500 centered.
	buttons := f.m.LocaleButtons()
	if buttons[0].Rect != core.NewRect(550, 385, 200, 130) || buttons[1].Rect != core.NewRect(850, 385, 200, 130) {
		t.Errorf("locale buttons = %+v, %+v", buttons[0].Rect, buttons[1].Rect)
	}
}

func TestUpdatePositionsIdempotent(t *testing.T) {
	f := newFixture(t, false)
	size := core.Size{W: 1280, H: 720}

	f.m.UpdatePositions(size)
	primary := append([]Entry(nil), f.m.Primary()...)
	settings := append([]Entry(nil), f.m.Settings()...)
	f.m.UpdatePositions(size)

	if !reflect.DeepEqual(primary, f.m.Primary()) || !reflect.DeepEqual(settings, f.m.Settings()) {
		t.Error("layout changed on a repeated update")
	}
}

func TestLabels(t *testing.T) {
	f := newFixture(t, false)

	tests := []struct {
		kind Kind
		want string
	}{
		{KindStart, "Start"},
		{KindDifficulty, "Easy"},
		{KindLanguage, "English"},
		{KindFullscreen, "Enable"},
		{KindToggleFPS, "Enable"},
		{KindBack, "Back"},
	}
	for _, tc := range tests {
		if got := Label(tc.kind, f.s); got != tc.want {
			t.Errorf("Label(%d) = %q, expected %q", tc.kind, got, tc.want)
		}
	}

	f.s.ToggleFPS()
	if got := Label(KindToggleFPS, f.s); got != "Disable" {
		t.Errorf("FPS label when visible = %q", got)
	}
	if got := Description(KindDifficulty, f.s); got != "Difficulty" {
		t.Errorf("Description(difficulty) = %q", got)
	}
	if got := Description(KindStart, f.s); got != "" {
		t.Errorf("Description(start) = %q", got)
	}
}

func TestHelpHeight(t *testing.T) {
	// 100 + 64*3 + 36*4 + 50 plus the last title.
	if got := HelpHeight(); got != 100+64*3+36*4+50+32 {
		t.Errorf("HelpHeight() = %v", got)
	}
}
