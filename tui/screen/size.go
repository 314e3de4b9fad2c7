package screen

import (
	"fmt"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/keymap"
)

const (
	// DefaultMinLines is the height every partui screen is laid out for.
	DefaultMinLines = 24
	// DefaultColumns is the width every partui screen is laid out for.
	DefaultColumns = 80
	// AbsoluteMinLines is the height below which partui does not even ask.
	AbsoluteMinLines = 8
)

// resizeReader is a Screen that also wakes up on terminal resizes.
type resizeReader interface {
	ReadKeyOrResize() (k keymap.Key, resized bool, err error)
}

// EnsureLines returns nil once s has at least minLines lines. While the
// terminal is between AbsoluteMinLines and minLines it shows a notice
// with a Quit button and re-checks after every key or resize; Q or Enter
// gives up.
func EnsureLines(s Screen, minLines int) error {
	for {
		rows, _ := s.Size()
		if rows >= minLines {
			s.Clear()
			return nil
		}
		if rows < AbsoluteMinLines {
			return errors.TerminalTooSmall(rows, minLines)
		}

		s.Clear()
		WriteAt(s, 0, 0, "partui", Bold)
		WriteAt(s, 4, 0, fmt.Sprintf("partui need %d lines to work.", minLines), Normal)
		WriteAt(s, 5, 0, "Please enlarge the terminal.", Normal)
		WriteAt(s, rows-2, 0, "[ Quit ]", Reverse)
		if err := s.Refresh(); err != nil {
			return err
		}

		k, resized, err := readKeyOrResize(s)
		if err != nil {
			return err
		}
		if resized {
			continue
		}
		if k.Upper() == 'Q' || k.IsEnter() {
			rows, _ = s.Size()
			if rows >= minLines {
				s.Clear()
				return nil
			}
			return errors.TerminalTooSmall(rows, minLines)
		}
	}
}

func readKeyOrResize(s Screen) (keymap.Key, bool, error) {
	if r, ok := s.(resizeReader); ok {
		return r.ReadKeyOrResize()
	}
	k, err := s.ReadKey()
	return k, false, err
}
