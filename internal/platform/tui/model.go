package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numbers/internal/app"
	"github.com/vovakirdan/numbers/internal/core"
)

// footerRows is the space below the game reserved for key help.
const footerRows = 1

// Config holds the terminal settings of a model.
type Config struct {
	core.RuntimeConfig

	MinSize    core.Size // Smallest virtual pixel plane
	Screenshot bool      // Whether ctrl+s dumps the screen to a file
}

// Model is the Bubble Tea model running one game.
type Model struct {
	app    *app.App
	win    *Window
	screen *core.Screen
	input  core.InputFrame
	keys   KeyMap
	help   help.Model
	theme  Theme
	config Config

	fps        int
	frames     int
	fpsStarted time.Time
	quitting   bool
}

// NewModel builds the game for the terminal area in cfg.
func NewModel(opts app.Options, cfg Config) (Model, error) {
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	win := NewWindow(cfg.ScreenW, cfg.ScreenH-footerRows, cfg.MinSize)
	opts.Size = win.ScreenSize()
	opts.Fullscreen = false

	a, err := app.New(opts)
	if err != nil {
		return Model{}, err
	}

	return Model{
		app:    a,
		win:    win,
		screen: core.NewScreen(win.Cols(), win.Rows()),
		input:  core.NewInputFrame(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		config: cfg,
	}, nil
}

// App returns the game driven by the model.
func (m Model) App() *app.App { return m.app }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update collects input between ticks and runs one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.config.Screenshot && msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

// handleMouse moves the pointer to the center of the cell under the mouse.
// Only a left button release counts as a click.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.input.Pointer = m.win.Pixel(msg.X, msg.Y)
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		m.input.Released = true
	}
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.win.Resize(msg.Width, msg.Height-footerRows)
	m.screen.Resize(m.win.Cols(), m.win.Rows())
	m.help.Width = msg.Width
	m.input.Resized = true
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.app.Frame(m.input, m.win)
	m.input.Clear()
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.countFrame(now)
	return m, tickCmd(m.config.TickRate)
}

// countFrame refreshes the frame rate once per second.
func (m *Model) countFrame(now time.Time) {
	m.frames++
	if m.fpsStarted.IsZero() {
		m.fpsStarted = now
		return
	}
	if elapsed := now.Sub(m.fpsStarted); elapsed >= time.Second {
		m.fps = int(float64(m.frames) / elapsed.Seconds())
		m.frames = 0
		m.fpsStarted = now
	}
}

// saveScreenshot writes the plain screen text to ~/.numbers/screenshots.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.win, m.app.View(), m.fps)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".numbers", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("numbers_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the frame and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.win, m.app.View(), m.fps)
	return RenderScreen(m.screen, m.theme) + "\n" +
		m.theme.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts app.Options, cfg Config) error {
	model, err := NewModel(opts, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err = p.Run()
	return err
}
