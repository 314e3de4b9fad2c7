package screen

import (
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/logging"
	"github.com/grovetools/partui/tui/keymap"
)

// Options configures a terminal session.
type Options struct {
	// Screen is the tcell screen to draw on. Nil opens the controlling
	// terminal.
	Screen    tcell.Screen
	MinLines  int
	AltScreen bool
	Logger    *logrus.Entry
}

// Session is a Screen backed by a tcell screen. A Session owns the
// terminal from Start until Close.
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	log    *logrus.Entry

	row, col      int
	cursorVisible bool
	closeOnce     sync.Once
}

// Start takes over the terminal. When it has fewer than MinLines lines
// the user is asked to enlarge it; if it stays too small Start restores
// the terminal and returns a TERMINAL_TOO_SMALL error.
func Start(opts Options) (*Session, error) {
	if opts.MinLines == 0 {
		opts.MinLines = DefaultMinLines
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger("screen")
	}

	sc := opts.Screen
	if sc == nil {
		fd := os.Stdin.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return nil, errors.New(errors.ErrCodeTerminalInit, "standard input is not a terminal")
		}
		if !opts.AltScreen {
			// Read by tcell when it opens the terminal.
			_ = os.Setenv("TCELL_ALTSCREEN", "disable")
		}
		var err error
		if sc, err = tcell.NewScreen(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeTerminalInit, "failed to open terminal")
		}
	}
	if err := sc.Init(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTerminalInit, "failed to initialize terminal")
	}

	s := &Session{
		screen: sc,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
		log:    opts.Logger,
	}

	// Structured logs must not reach the terminal while the session draws on it.
	logging.SetGlobalOutput(io.Discard)

	sc.SetStyle(tcell.StyleDefault)
	sc.HideCursor()
	s.Clear()

	go sc.ChannelEvents(s.events, s.quit)

	rows, cols := s.Size()
	s.log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("Terminal session started")

	if err := EnsureLines(s, opts.MinLines); err != nil {
		s.log.WithError(err).Error("Terminal too small")
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close clears the screen and restores the terminal. It is safe to call
// more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Clear()
		s.screen.Fini()

		logging.SetGlobalOutput(os.Stderr)
		s.log.Debug("Terminal session closed")
	})
	return nil
}

func (s *Session) MoveTo(row, col int) {
	s.row, s.col = row, col
	if s.cursorVisible {
		s.screen.ShowCursor(col, row)
	}
}

func (s *Session) ClearToEOL() {
	width, _ := s.screen.Size()
	for x := s.col; x < width; x++ {
		s.screen.SetContent(x, s.row, ' ', nil, tcell.StyleDefault)
	}
}

func (s *Session) WriteText(text string, attr Attr) {
	style := styleFor(attr)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(s.col, s.row, r, nil, style)
		s.col += w
	}
	if s.cursorVisible {
		s.screen.ShowCursor(s.col, s.row)
	}
}

func styleFor(attr Attr) tcell.Style {
	style := tcell.StyleDefault
	if attr&Reverse != 0 {
		style = style.Reverse(true)
	}
	if attr&Bold != 0 {
		style = style.Bold(true)
	}
	if attr&Dim != 0 {
		style = style.Dim(true)
	}
	return style
}

func (s *Session) Clear() {
	s.screen.Clear()
	s.row, s.col = 0, 0
}

func (s *Session) Cursor() (int, int) {
	return s.row, s.col
}

func (s *Session) SetCursorVisible(visible bool) {
	s.cursorVisible = visible
	if visible {
		s.screen.ShowCursor(s.col, s.row)
	} else {
		s.screen.HideCursor()
	}
}

// Size reports the size tcell last saw; resizes arrive as events.
func (s *Session) Size() (int, int) {
	cols, rows := s.screen.Size()
	return rows, cols
}

// Refresh shows what was drawn. After Close it does nothing.
func (s *Session) Refresh() error {
	select {
	case <-s.quit:
	default:
		s.screen.Show()
	}
	return nil
}

func (s *Session) Bell() {
	_ = s.screen.Beep()
}

// ReadKey blocks until a key is pressed. Resizes are applied on the way.
func (s *Session) ReadKey() (keymap.Key, error) {
	for {
		k, resized, err := s.ReadKeyOrResize()
		if err != nil || !resized {
			return k, err
		}
	}
}

// ReadKeyOrResize blocks until a key is pressed or the terminal is
// resized, in which case resized is true and k is None.
func (s *Session) ReadKeyOrResize() (k keymap.Key, resized bool, err error) {
	if err := s.Refresh(); err != nil {
		return keymap.None, false, err
	}
	for ev := range s.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if k := keymap.FromTcell(ev); k != keymap.None {
				return k, false, nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
			return keymap.None, true, nil
		case *tcell.EventError:
			return keymap.None, false, errors.InputClosed(ev)
		}
	}
	return keymap.None, false, errors.InputClosed(io.EOF)
}

func (s *Session) ReadKeyNonBlocking() (keymap.Key, bool, error) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return keymap.None, false, errors.InputClosed(io.EOF)
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := keymap.FromTcell(ev); k != keymap.None {
					return k, true, nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventError:
				return keymap.None, false, errors.InputClosed(ev)
			}
		default:
			return keymap.None, false, nil
		}
	}
}

var _ Screen = (*Session)(nil)
