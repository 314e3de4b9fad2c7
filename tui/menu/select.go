package menu

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/screen"
)

// DebugRow is where a rejected key code is shown when DebugBell is set.
const DebugRow = 5

// Select runs a menu on s until a key commits it and returns the
// committed key. cursor, when not nil, is read as the starting item and
// updated after every key so a caller can reopen the menu where the user
// left it.
func Select(s screen.Screen, items []Item, available Available, opts Options, cursor *int) (keymap.Key, error) {
	k, _, err := SelectWithRawKey(s, items, available, opts, cursor)
	return k, err
}

// SelectWithRawKey is Select that also returns the key as pressed,
// before keypad digits were translated.
func SelectWithRawKey(s screen.Screen, items []Item, available Available, opts Options, cursor *int) (keymap.Key, keymap.Key, error) {
	opts = opts.withDefaults()

	start := 0
	if cursor != nil {
		start = *cursor
	}
	nav, err := NewNavigator(items, available, opts.Flags, start)
	if err != nil {
		return keymap.None, keymap.None, err
	}
	if cursor != nil {
		*cursor = nav.Cursor()
	}

	for {
		grid := Layout(items, available, opts, nav.Cursor())
		Draw(s, grid)
		if err := s.Refresh(); err != nil {
			return keymap.None, keymap.None, err
		}

		raw, err := s.ReadKey()
		Erase(s, grid)
		if err != nil {
			return keymap.None, keymap.None, err
		}

		tr := nav.Handle(raw)
		if cursor != nil {
			*cursor = tr.Cursor
		}
		opts.Logger.WithFields(logrus.Fields{
			"key":     raw.String(),
			"outcome": tr.Outcome.String(),
			"cursor":  tr.Cursor,
		}).Debug("Menu key")

		switch tr.Outcome {
		case Commit:
			return tr.Key, tr.Raw, nil
		case Rejected:
			if opts.DebugBell && raw != keymap.None {
				screen.WriteAt(s, DebugRow, 0, fmt.Sprintf("key %03X", raw.Code()), screen.Normal)
				s.Bell()
			}
		}
	}
}

// SelectSimple runs a horizontal button menu of every item on the bottom
// rows of the screen, starting on item def.
func SelectSimple(s screen.Screen, items []Item, def int) (keymap.Key, error) {
	width := 0
	for _, item := range items {
		width = max(width, runewidth.StringWidth(item.Name))
	}
	cursor := def
	return Select(s, items, AllKeys(items), Options{
		Row:       18,
		Col:       0,
		StatusRow: 23,
		ItemWidth: width,
		Flags:     Horizontal | Button,
	}, &cursor)
}

// Draw renders a laid out menu. The current item is reversed and
// unavailable items are dimmed.
func Draw(r screen.Renderer, grid Grid) {
	for _, cell := range grid.Cells {
		attr := screen.Normal
		switch {
		case cell.Current:
			attr = screen.Reverse
		case !cell.Available:
			attr = screen.Dim
		}
		screen.WriteAt(r, cell.Row, cell.Col, cell.Text, attr)
		if cell.Description != "" {
			descAttr := screen.Normal
			if !cell.Available {
				descAttr = screen.Dim
			}
			screen.WriteAt(r, cell.Row, cell.DescCol, cell.Description, descAttr)
		}
	}
	if grid.Status != "" {
		screen.WriteAt(r, grid.StatusRow, grid.StatusCol, grid.Status, screen.Normal)
	}
}

// Erase blanks every line a menu drew on, including the status line.
func Erase(r screen.Renderer, grid Grid) {
	if len(grid.Cells) == 0 {
		return
	}
	top := grid.Cells[0].Row
	left := grid.Cells[0].Col
	for _, cell := range grid.Cells {
		top = min(top, cell.Row)
		left = min(left, cell.Col)
	}
	screen.ClearLines(r, top, grid.Bottom, left)
	screen.ClearLines(r, grid.StatusRow, grid.StatusRow, 0)
}
