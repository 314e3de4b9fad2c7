package logviewer

import (
	"github.com/mattn/go-runewidth"

	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

const (
	// Row is the first screen row of buffer lines.
	Row = 8
	// markerCol is where the Previous and Next markers are drawn.
	markerCol = 4
	// tailRow is where DrawTail starts, under the report title.
	tailRow = 8
)

var defaultItems = []menu.Item{
	{Key: 'P', Name: "Previous"},
	{Key: 'N', Name: "Next"},
	{Key: 'Q', Name: "Quit", Description: "Quit this section"},
}

// PageLines returns how many buffer lines Display shows on a screen of
// rows lines.
func PageLines(rows int) int {
	return max(1, rows-2-Row-2)
}

// DrawTail draws the last page of b below the report title, so the
// newest lines stay visible while a long operation runs.
func DrawTail(s screen.Screen, b *Buffer) error {
	rows, cols := s.Size()
	visible := max(1, rows-10)
	lines := b.Lines()
	pos := max(0, len(lines)-visible)
	for i := pos; i < len(lines) && i-pos < visible; i++ {
		row := tailRow + i - pos
		s.MoveTo(row, 0)
		s.ClearToEOL()
		s.WriteText(fit(lines[i], cols), screen.Normal)
	}
	return s.Refresh()
}

// Display shows b in a scrollable pane above a menu of items, or of
// Previous/Next/Quit when items is nil. Q is always available; options
// lists the other available keys. It returns keymap.None on quit, or the
// upper case option chosen. cursor carries the menu position between
// calls.
func Display(s screen.Screen, b *Buffer, options string, items []menu.Item, cursor *int) (keymap.Key, error) {
	if items == nil {
		items = defaultItems
	}
	if cursor == nil {
		cursor = new(int)
	}
	available := menu.Available("Q" + options)

	rows, cols := s.Size()
	visible := PageLines(rows)
	opts := menu.Options{
		Row:       rows - 2,
		StatusRow: rows - 1,
		ItemWidth: 8,
		Flags:     menu.Horizontal | menu.Button | menu.AcceptOthers,
	}

	lines := b.Lines()
	total := len(lines)
	first, current := 0, 0

	for {
		s.MoveTo(Row-1, markerCol)
		s.ClearToEOL()
		if first > 0 {
			s.WriteText("Previous", screen.Normal)
		}

		highlight := total > visible
		i := first
		for ; i < total && i-first < visible; i++ {
			attr := screen.Normal
			if highlight && i == current {
				attr = screen.Reverse
			}
			s.MoveTo(Row+i-first, 0)
			s.ClearToEOL()
			s.WriteText(runewidth.FillRight(fit(lines[i], cols), cols), attr)
		}

		s.MoveTo(Row+visible, markerCol)
		s.ClearToEOL()
		if i < total {
			s.WriteText("Next", screen.Normal)
		}

		k, err := menu.Select(s, items, available, opts, cursor)
		if err != nil {
			return keymap.None, err
		}

		switch k {
		case keymap.Escape, 'q', 'Q':
			return keymap.None, nil
		case 'p', 'P', keymap.Up:
			if current > 0 {
				current--
			}
		case 'n', 'N', keymap.Down:
			if current < total-1 {
				current++
			}
		case keymap.PageUp:
			current = max(0, current-(visible-1))
		case keymap.PageDown:
			current = max(0, min(total-1, current+visible-1))
		default:
			if u := k.Upper(); available.Has(u) {
				return u, nil
			}
		}

		if current < first {
			first = current
		}
		if current >= first+visible {
			first = current - visible + 1
		}
	}
}

func fit(line string, cols int) string {
	if cols > 0 && runewidth.StringWidth(line) > cols {
		return runewidth.Truncate(line, cols, "")
	}
	return line
}
