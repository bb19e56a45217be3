package core

// Button is a clickable rectangle with a hover flag.
// Hover is derived state: it is recomputed from the pointer every frame by Track
// and never carried over between frames.
type Button struct {
	Rect    Rect
	Hovered bool
}

// Track updates the hover flag from the pointer position and reports it.
func (b *Button) Track(pointer Vec2) bool {
	b.Hovered = b.Rect.Contains(pointer)
	return b.Hovered
}

// Clicked reports whether the frame released the pointer over the button.
// It also refreshes the hover flag.
func (b *Button) Clicked(in InputFrame) bool {
	return b.Track(in.Pointer) && in.Released
}

// Reset clears the hover flag.
func (b *Button) Reset() {
	b.Hovered = false
}

// Color returns the fill colour for the current hover state.
func (b Button) Color() Color {
	if b.Hovered {
		return ColorHighlight
	}
	return ColorIdle
}
