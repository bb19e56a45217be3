// Package timer implements the round countdown: a wall-clock timer with a
// short start grace delay and pause/resume that preserves remaining time.
package timer

import "time"

// Grace is how long a started timer waits before Activate lets it run.
const Grace = 100 * time.Millisecond

// Clock reads the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timer counts a fixed duration down from its start time.
// It is polled every frame; there are no callbacks.
type Timer struct {
	clock    Clock
	running  bool
	start    time.Time
	pausedAt time.Time // zero when not paused
	duration time.Duration
}

// New creates an idle timer.
func New(duration time.Duration) *Timer {
	return NewWithClock(duration, SystemClock{})
}

// NewWithClock creates an idle timer reading time from clock.
func NewWithClock(duration time.Duration, clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{clock: clock, duration: duration}
}

// Duration returns the countdown length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// IsActive reports whether the countdown is running.
func (t *Timer) IsActive() bool {
	return t.running
}

// IsPaused reports whether a pause is pending a Resume.
func (t *Timer) IsPaused() bool {
	return !t.pausedAt.IsZero()
}

// Start resets the start time. The timer stays inactive until Activate is
// called after the grace delay.
func (t *Timer) Start() {
	t.running = false
	t.pausedAt = time.Time{}
	t.start = t.clock.Now()
}

// Activate starts counting once the grace delay since Start has elapsed.
func (t *Timer) Activate() {
	if t.clock.Now().After(t.start.Add(Grace)) {
		t.running = true
	}
}

// Pause stops the countdown. Repeated calls keep the first pause time.
func (t *Timer) Pause() {
	if !t.pausedAt.IsZero() {
		return
	}
	t.running = false
	t.pausedAt = t.clock.Now()
}

// Resume shifts the start time by the paused interval so the remaining time
// is unchanged. It does nothing when the timer is not paused.
func (t *Timer) Resume() {
	if t.pausedAt.IsZero() {
		return
	}
	t.start = t.start.Add(t.clock.Now().Sub(t.pausedAt))
	t.pausedAt = time.Time{}
}

// Finish stops the timer for good.
func (t *Timer) Finish() {
	t.running = false
	t.start = time.Time{}
}

// IsOver reports whether the running countdown has reached its duration.
func (t *Timer) IsOver() bool {
	return t.running && !t.clock.Now().Before(t.start.Add(t.duration))
}

// Remaining returns the time left. While paused it is frozen at the pause
// time. An idle or finished timer has nothing left.
func (t *Timer) Remaining() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	now := t.clock.Now()
	if !t.pausedAt.IsZero() {
		now = t.pausedAt
	}
	left := t.start.Add(t.duration).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
