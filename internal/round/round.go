// Package round implements one timed play-through of the numbers grid:
// tile layout, click validation, scoring and the win/lose screens.
package round

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numbers/internal/config"
	"github.com/vovakirdan/numbers/internal/core"
	"github.com/vovakirdan/numbers/internal/session"
	"github.com/vovakirdan/numbers/internal/timer"
)

// NoTile marks the absence of a hovered or mis-clicked tile.
const NoTile = -1

// Options configure a Round.
type Options struct {
	Buttons config.ButtonsConfig // Zero value uses the defaults
	Seed    int64                // Shuffle seed, 0 means time based
	Clock   timer.Clock          // nil uses the wall clock
	Logger  *log.Logger
}

// Round is the puzzle grid with its countdown.
type Round struct {
	grid    config.GridConfig
	buttons config.ButtonsConfig
	rng     *rand.Rand
	clock   timer.Clock
	logger  *log.Logger

	numbers []int       // Target number of each tile, empty until started
	tiles   []core.Rect // Row-major tile rectangles
	solved  []bool
	correct []int // Solved tile indices in click order

	active   int
	wrong    int
	score    int
	fails    int
	finished bool

	timer *timer.Timer

	Exit       core.Button // In-game exit to the menu
	TryAgain   core.Button // Win/lose screen
	ResultExit core.Button // Win/lose screen
}

// New creates a round laid out for size. It is not started.
func New(grid config.GridConfig, size core.Size, opts Options) *Round {
	if opts.Buttons == (config.ButtonsConfig{}) {
		opts.Buttons = config.DefaultConfig().Buttons
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = timer.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	r := &Round{
		grid:    grid,
		buttons: opts.Buttons,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		clock:   opts.Clock,
		logger:  opts.Logger,
		tiles:   make([]core.Rect, grid.Tiles()),
		solved:  make([]bool, grid.Tiles()),
		active:  NoTile,
		wrong:   NoTile,
		timer:   timer.NewWithClock(0, opts.Clock),
	}
	r.UpdatePositions(size)
	return r
}

// Start shuffles the numbers, clears all counters and starts a fresh timer.
func (r *Round) Start(duration time.Duration) {
	n := r.grid.Tiles()
	r.numbers = make([]int, n)
	for i, v := range r.rng.Perm(n) {
		r.numbers[i] = v + 1
	}

	r.correct = r.correct[:0]
	for i := range r.solved {
		r.solved[i] = false
	}
	r.active = NoTile
	r.wrong = NoTile
	r.score = 0
	r.fails = 0
	r.finished = false
	r.Exit.Reset()
	r.TryAgain.Reset()
	r.ResultExit.Reset()

	r.timer = timer.NewWithClock(duration, r.clock)
	r.timer.Start()
	r.logger.Debug("round started", "tiles", n, "duration", duration)
}

// Restart begins a new round after a finished one. It is a full Start.
func (r *Round) Restart(duration time.Duration) {
	r.Start(duration)
}

// Resume continues a paused round and switches the session to Game.
func (r *Round) Resume(s *session.Session) {
	s.SetState(session.StateGame)
	r.timer.Resume()
}

// ProcessController runs the round for one frame. It runs after the session
// and the menu.
func (r *Round) ProcessController(in core.InputFrame, s *session.Session) core.StepResult {
	switch s.State() {
	case session.StateMenu:
		if r.Started() {
			r.timer.Pause()
		}
	case session.StateGame:
		r.processGame(in, s)
	case session.StateWin, session.StateLose:
		r.processResult(in, s)
	}
	return core.StepResult{}
}

func (r *Round) processGame(in core.InputFrame, s *session.Session) {
	r.active = NoTile
	if r.Exit.Clicked(in) {
		r.Exit.Reset()
		s.SetState(session.StateMenu)
		return
	}

	if r.complete() {
		r.end(s, session.StateWin)
		return
	}
	if r.timer.IsOver() {
		r.end(s, session.StateLose)
		return
	}
	if !r.timer.IsActive() {
		r.timer.Activate()
		return
	}

	for i, tile := range r.tiles {
		if r.solved[i] || !tile.Contains(in.Pointer) {
			continue
		}
		r.active = i
		if in.Released {
			r.pick(i)
			r.active = NoTile
		}
		break
	}

	if r.complete() {
		r.end(s, session.StateWin)
	}
}

// pick validates a click on tile i.
func (r *Round) pick(i int) {
	if r.numbers[i] == r.score+1 {
		r.solved[i] = true
		r.correct = append(r.correct, i)
		r.wrong = NoTile
		r.score++
		return
	}
	// Only a wrong pick while the previous one is still shown is a fail.
	if r.wrong != NoTile {
		r.fails++
	}
	r.wrong = i
}

func (r *Round) complete() bool {
	return len(r.numbers) > 0 && len(r.correct) == len(r.numbers)
}

func (r *Round) end(s *session.Session, st session.State) {
	r.timer.Finish()
	r.finished = true
	r.active = NoTile
	s.SetState(st)
	r.logger.Debug("round over", "result", st, "score", r.score, "fails", r.fails)
}

func (r *Round) processResult(in core.InputFrame, s *session.Session) {
	switch {
	case r.TryAgain.Clicked(in):
		r.TryAgain.Reset()
		r.Restart(s.RoundDuration())
		s.SetState(session.StateGame)
	case r.ResultExit.Clicked(in):
		r.ResultExit.Reset()
		s.SetState(session.StateMenu)
	}
}

// UpdatePositions lays out tiles and buttons for size. The gap between tiles
// is recomputed from scratch on each axis and clamped to the configured range.
func (r *Round) UpdatePositions(size core.Size) {
	g := r.grid
	hGap := gap(size.W, g.Margin, g.Cols, g.TileWidth, g.HGap)
	vGap := gap(size.H, g.Margin, g.Rows, g.TileHeight, g.VGap)

	stepX := g.TileWidth + hGap
	stepY := g.TileHeight + vGap
	originX := (size.W - float64(g.Cols)*stepX + hGap) / 2
	originY := (size.H - float64(g.Rows)*stepY + vGap) / 2

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			r.tiles[row*g.Cols+col] = core.NewRect(
				float64(col)*stepX+originX,
				float64(row)*stepY+originY,
				g.TileWidth,
				g.TileHeight,
			)
		}
	}

	b := r.buttons
	r.Exit.Rect = core.NewRect(size.W-b.ExitWidth-b.EdgeMargin, b.Top, b.ExitWidth, b.Height)
	r.TryAgain.Rect = core.NewRect(size.W/2-b.TryAgainWidth, size.H/2+b.ResultOffset, b.TryAgainWidth, b.Height)
	r.ResultExit.Rect = core.NewRect(size.W/2+b.ResultGap, size.H/2+b.ResultOffset, b.ExitWidth, b.Height)
}

func gap(dim, margin float64, n int, tile float64, bounds config.GapRange) float64 {
	if n < 2 {
		return bounds.Min
	}
	g := (dim - margin - float64(n)*tile) / float64(n-1)
	return core.ClampF(g, bounds.Min, bounds.Max)
}

// Tiles returns the tile rectangles in row-major order.
func (r *Round) Tiles() []core.Rect { return r.tiles }

// Numbers returns the target number of each tile. It is empty before Start.
func (r *Round) Numbers() []int { return r.numbers }

// IsCorrect reports whether tile i has been solved.
func (r *Round) IsCorrect(i int) bool { return r.solved[i] }

// ActiveIndex returns the hovered tile or NoTile.
func (r *Round) ActiveIndex() int { return r.active }

// WrongIndex returns the highlighted mis-clicked tile or NoTile.
func (r *Round) WrongIndex() int { return r.wrong }

// Score returns the number of correct clicks.
func (r *Round) Score() int { return r.score }

// Fails returns the number of counted wrong clicks.
func (r *Round) Fails() int { return r.fails }

// Remaining returns the countdown time left.
func (r *Round) Remaining() time.Duration { return r.timer.Remaining() }

// Started reports whether a round has been started at least once.
func (r *Round) Started() bool { return len(r.numbers) > 0 }

// IsOver reports whether the current round ended in a win or a loss.
func (r *Round) IsOver() bool { return r.finished }

// TimerActive reports whether the countdown is running.
func (r *Round) TimerActive() bool { return r.timer.IsActive() }
