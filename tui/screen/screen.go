// Package screen is the drawing and key input surface every partui widget
// runs against. Session drives a real terminal in raw mode; Buffer is an
// in-memory grid with scripted keys.
package screen

import "github.com/grovetools/partui/tui/keymap"

// Attr is a set of text attributes.
type Attr uint8

const (
	Normal  Attr = 0
	Reverse Attr = 1 << (iota - 1)
	Bold
	Dim
)

// Renderer draws text at absolute positions. Rows and columns are 0-based.
type Renderer interface {
	MoveTo(row, col int)
	// ClearToEOL blanks the current line from the cursor to the right edge.
	ClearToEOL()
	// WriteText writes text at the cursor and advances it.
	WriteText(text string, attr Attr)
	Clear()
	Cursor() (row, col int)
	SetCursorVisible(visible bool)
	// Size returns the current terminal height and width.
	Size() (rows, cols int)
	// Refresh makes everything written so far visible.
	Refresh() error
	Bell()
}

// Input delivers decoded key presses.
type Input interface {
	// ReadKey blocks until a key is available.
	ReadKey() (keymap.Key, error)
	// ReadKeyNonBlocking returns a pending key if there is one. It does
	// not change the blocking behavior of later ReadKey calls.
	ReadKeyNonBlocking() (keymap.Key, bool, error)
}

// Screen is a Renderer with keyboard input.
type Screen interface {
	Renderer
	Input
}

// ClearLines blanks rows from..to inclusive starting at col.
func ClearLines(r Renderer, from, to, col int) {
	for row := from; row <= to; row++ {
		r.MoveTo(row, col)
		r.ClearToEOL()
	}
}

// WriteAt moves to row, col and writes text.
func WriteAt(r Renderer, row, col int, text string, attr Attr) {
	r.MoveTo(row, col)
	r.WriteText(text, attr)
}
