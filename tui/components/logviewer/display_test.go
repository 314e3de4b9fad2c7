package logviewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

type frame struct {
	marker   string
	first    string
	next     string
	reversed int
}

// recorder captures the pane each time the menu waits for a key.
type recorder struct {
	*screen.Buffer
	frames []frame
}

func (r *recorder) ReadKey() (keymap.Key, error) {
	rows, _ := r.Size()
	visible := PageLines(rows)
	f := frame{
		marker:   r.Line(Row - 1),
		first:    r.Line(Row),
		next:     r.Line(Row + visible),
		reversed: -1,
	}
	for row := Row; row < Row+visible; row++ {
		if r.AttrAt(row, 0) == screen.Reverse {
			f.reversed = row
		}
	}
	r.frames = append(r.frames, f)
	return r.Buffer.ReadKey()
}

func newRecorder(keys ...keymap.Key) *recorder {
	b := screen.NewBuffer(24, 80)
	b.Push(keys...)
	return &recorder{Buffer: b}
}

func numbered(n int) *Buffer {
	b := NewBuffer()
	for i := 0; i < n; i++ {
		b.Printf("line %02d\n", i)
	}
	return b
}

func TestDisplayScrolls(t *testing.T) {
	s := newRecorder(keymap.Down, keymap.Down, keymap.Down, keymap.PageDown, 'p', 'q')

	k, err := Display(s, numbered(30), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, keymap.None, k)

	require.Len(t, s.frames, 6)
	assert.Equal(t, 12, PageLines(24))

	assert.Empty(t, s.frames[0].marker)
	assert.Equal(t, "line 00", s.frames[0].first)
	assert.Equal(t, "    Next", s.frames[0].next)
	assert.Equal(t, Row, s.frames[0].reversed)

	assert.Equal(t, Row+3, s.frames[3].reversed)

	// PageDown moves the current line by a page less one and scrolls.
	assert.Equal(t, "    Previous", s.frames[4].marker)
	assert.Equal(t, "line 03", s.frames[4].first)
	assert.Equal(t, Row+11, s.frames[4].reversed)

	assert.Equal(t, Row+10, s.frames[5].reversed)
}

func TestDisplayShortBufferHasNoHighlight(t *testing.T) {
	s := newRecorder(keymap.Down, keymap.Escape)

	k, err := Display(s, numbered(3), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, keymap.None, k)

	for _, f := range s.frames {
		assert.Equal(t, -1, f.reversed)
		assert.Empty(t, f.next)
		assert.Empty(t, f.marker)
	}
	assert.Equal(t, "line 02", s.Line(Row+2))
}

func TestDisplayOptions(t *testing.T) {
	items := []menu.Item{
		{Key: 'Q', Name: "Quit"},
		{Key: 'L', Name: "Load", Description: "Load a backup"},
		{Key: 'W', Name: "Write"},
	}

	t.Run("available option", func(t *testing.T) {
		s := newRecorder('l')
		cursor := 0
		k, err := Display(s, numbered(5), "L", items, &cursor)
		require.NoError(t, err)
		assert.Equal(t, keymap.Key('L'), k)
		assert.Equal(t, 1, cursor)
	})

	t.Run("unavailable option is ignored", func(t *testing.T) {
		s := newRecorder('w', keymap.Enter)
		cursor := 0
		k, err := Display(s, numbered(5), "L", items, &cursor)
		require.NoError(t, err)
		assert.Equal(t, keymap.None, k, "enter on Quit")
		assert.Len(t, s.frames, 2)
	})

	t.Run("cursor carries over", func(t *testing.T) {
		s := newRecorder(keymap.Enter)
		cursor := 1
		k, err := Display(s, numbered(5), "L", items, &cursor)
		require.NoError(t, err)
		assert.Equal(t, keymap.Key('L'), k)
	})
}

func TestDisplayEmptyBuffer(t *testing.T) {
	s := newRecorder(keymap.Down, keymap.PageDown, keymap.PageUp, 'Q')
	k, err := Display(s, NewBuffer(), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, keymap.None, k)
}

func TestDrawTail(t *testing.T) {
	s := screen.NewBuffer(24, 80)
	require.NoError(t, DrawTail(s, numbered(30)))

	assert.Equal(t, "line 16", s.Line(tailRow))
	assert.Equal(t, "line 29", s.Line(tailRow+13))
	assert.Empty(t, s.Line(tailRow+14))
	assert.Equal(t, 1, s.Refreshes())

	s = screen.NewBuffer(24, 80)
	b := numbered(2)
	b.Printf("working")
	require.NoError(t, DrawTail(s, b))
	assert.Equal(t, "line 00", s.Line(tailRow))
	assert.Equal(t, "working", s.Line(tailRow+2))
}
