package core

// RuntimeConfig contains the start-up settings of a front end.
type RuntimeConfig struct {
	ScreenW  int // Initial width, in cells for terminal front ends
	ScreenH  int // Initial height, in cells for terminal front ends
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// StepResult is returned by every controller pass.
// Quit asks the front end to leave its loop and clean up.
type StepResult struct {
	Quit bool
}
