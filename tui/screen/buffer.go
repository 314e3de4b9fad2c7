package screen

import (
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/keymap"
)

type cell struct {
	r    rune
	attr Attr
}

// Buffer is an in-memory Screen. Keys pushed with Push are returned by
// ReadKey in order; once they run out ReadKey fails with INPUT_CLOSED.
type Buffer struct {
	mu        sync.Mutex
	rows      int
	cols      int
	grid      [][]cell
	row, col  int
	visible   bool
	keys      []keymap.Key
	bells     int
	refreshes int
}

// NewBuffer returns a blank rows x cols screen.
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{visible: true}
	b.Resize(rows, cols)
	return b
}

// Resize changes the screen size, keeping what still fits.
func (b *Buffer) Resize(rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = blankLine(cols)
		if i < len(b.grid) {
			copy(grid[i], b.grid[i])
		}
	}
	b.grid, b.rows, b.cols = grid, rows, cols
}

func blankLine(cols int) []cell {
	line := make([]cell, cols)
	for i := range line {
		line[i] = cell{r: ' '}
	}
	return line
}

// Push queues keys for ReadKey.
func (b *Buffer) Push(keys ...keymap.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, keys...)
}

// PushString queues every rune of s as a key.
func (b *Buffer) PushString(s string) {
	for _, r := range s {
		b.Push(keymap.Key(r))
	}
}

// Pending returns the number of keys not yet read.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

func (b *Buffer) MoveTo(row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.row, b.col = row, col
}

func (b *Buffer) ClearToEOL() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.row < 0 || b.row >= b.rows {
		return
	}
	for c := max(b.col, 0); c < b.cols; c++ {
		b.grid[b.row][c] = cell{r: ' '}
	}
}

func (b *Buffer) WriteText(text string, attr Attr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range text {
		if r == '\n' {
			b.row++
			b.col = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if b.row >= 0 && b.row < b.rows && b.col >= 0 && b.col+w <= b.cols {
			b.grid[b.row][b.col] = cell{r: r, attr: attr}
			for i := 1; i < w; i++ {
				b.grid[b.row][b.col+i] = cell{r: 0, attr: attr}
			}
		}
		b.col += w
	}
}

func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.grid {
		b.grid[i] = blankLine(b.cols)
	}
	b.row, b.col = 0, 0
}

func (b *Buffer) Cursor() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.row, b.col
}

func (b *Buffer) SetCursorVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = visible
}

// CursorVisible reports the last SetCursorVisible value.
func (b *Buffer) CursorVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Buffer) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.cols
}

func (b *Buffer) Refresh() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshes++
	return nil
}

func (b *Buffer) Bell() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bells++
}

// Bells returns how many times the bell rang.
func (b *Buffer) Bells() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bells
}

// Refreshes returns how many times Refresh was called.
func (b *Buffer) Refreshes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

func (b *Buffer) ReadKey() (keymap.Key, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.keys) == 0 {
		return keymap.None, errors.InputClosed(io.EOF)
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, nil
}

func (b *Buffer) ReadKeyNonBlocking() (keymap.Key, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.keys) == 0 {
		return keymap.None, false, nil
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, true, nil
}

// Line returns row as text with trailing blanks removed.
func (b *Buffer) Line(row int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.grid[row] {
		if c.r != 0 {
			sb.WriteRune(c.r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// AttrAt returns the attributes of the cell at row, col.
func (b *Buffer) AttrAt(row, col int) Attr {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Normal
	}
	return b.grid[row][col].attr
}

// Text returns every line joined by newlines, trailing blank lines removed.
func (b *Buffer) Text() string {
	rows, _ := b.Size()
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = b.Line(i)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// Find returns the position of the first occurrence of s, or -1, -1.
// The column counts runes, which matches cells for narrow text.
func (b *Buffer) Find(s string) (row, col int) {
	rows, _ := b.Size()
	for i := 0; i < rows; i++ {
		line := b.Line(i)
		if idx := strings.Index(line, s); idx >= 0 {
			return i, len([]rune(line[:idx]))
		}
	}
	return -1, -1
}

var _ Screen = (*Buffer)(nil)
