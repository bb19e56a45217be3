package core

// Color is a semantic colour for a drawable element.
// Front ends translate it into their own palette.
type Color uint8

const (
	ColorDefault   Color = iota // Ink on the background
	ColorIdle                   // Menu entry at rest
	ColorHighlight              // Element under the pointer
	ColorCorrect                // Solved tile, win text
	ColorWrong                  // Mis-clicked tile, lose text
	ColorText                   // Ink on a coloured fill
	ColorMuted
	ColorOutline
)
