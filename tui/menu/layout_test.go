package menu

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOptions(opts Options) (Options, *test.Hook) {
	logger, hook := test.NewNullLogger()
	opts.Logger = logrus.NewEntry(logger)
	return opts, hook
}

func TestLayoutVerticalWrapsIntoColumns(t *testing.T) {
	opts, _ := quietOptions(Options{Row: 0, StatusRow: 5, ItemWidth: 6, Flags: Vertical})
	grid := Layout(letterItems(10), "ABCDEFGHIJ", opts, 0)
	require.Len(t, grid.Cells, 10)

	cell := grid.Cells[5]
	assert.Equal(t, 1, cell.Column, "second column")
	assert.Equal(t, 1, cell.Line, "second row")
	assert.Equal(t, 1, cell.Row)
	assert.Equal(t, 6+DefaultSpacing, cell.Col)

	assert.Equal(t, 0, grid.Cells[4].Line)
	assert.Equal(t, 2, grid.Cells[8].Column)
	assert.Equal(t, 3, grid.Bottom)
}

func TestLayoutHorizontalWraps(t *testing.T) {
	opts, _ := quietOptions(Options{Row: 2, Col: 0, ItemWidth: 10, Columns: 40, Spacing: 2, Flags: Horizontal})
	grid := Layout(letterItems(5), "ABCDE", opts, 0)

	// Items are 10 wide with a gap of 2: three fit in 40 columns.
	for i, want := range []struct{ row, col, slot int }{
		{2, 0, 0}, {2, 12, 1}, {2, 24, 2}, {3, 0, 0}, {3, 12, 1},
	} {
		assert.Equal(t, want.row, grid.Cells[i].Row, "item %d row", i)
		assert.Equal(t, want.col, grid.Cells[i].Col, "item %d col", i)
		assert.Equal(t, want.slot, grid.Cells[i].Column, "item %d slot", i)
	}
	assert.Equal(t, 3, grid.Bottom)
}

func TestLayoutButtonFormatting(t *testing.T) {
	opts, _ := quietOptions(Options{ItemWidth: 8, Flags: Horizontal | Button})
	grid := Layout(pagerItems(), "PNQ", opts, 1)

	assert.Equal(t, "[Previous]", grid.Cells[0].Text)
	assert.Equal(t, "[  Next  ]", grid.Cells[1].Text)
	assert.Equal(t, "[  Quit  ]", grid.Cells[2].Text)
	assert.Equal(t, 10, grid.Cells[1].Width)
	assert.Equal(t, 12, grid.Cells[1].Col)
	assert.True(t, grid.Cells[1].Current)
	assert.False(t, grid.Cells[0].Current)
}

func TestLayoutPlainCentering(t *testing.T) {
	opts, _ := quietOptions(Options{ItemWidth: 7, Flags: Horizontal})
	grid := Layout([]Item{{Key: 'A', Name: "abc"}, {Key: 'B', Name: "longer name"}}, "AB", opts, 0)

	assert.Equal(t, "  abc  ", grid.Cells[0].Text)
	assert.Equal(t, "longer name", grid.Cells[1].Text)
	assert.Equal(t, 9, grid.Cells[1].Col)
}

func TestLayoutVerticalButtonsAlign(t *testing.T) {
	items := []Item{
		{Key: 'A', Name: "Intel"},
		{Key: 'B', Name: "Mac"},
		{Key: 'C', Name: "Sun"},
	}
	opts, _ := quietOptions(Options{ItemWidth: 11, Flags: Vertical | Button})
	grid := Layout(items, "ABC", opts, 0)

	// Every label starts in the same column, centered on the widest name.
	for _, cell := range grid.Cells {
		assert.Equal(t, 13, len(cell.Text), cell.Text)
		assert.Equal(t, 4, strings.IndexFunc(cell.Text, func(r rune) bool { return r != '[' && r != ' ' }), cell.Text)
	}
}

func TestLayoutDrawsUnavailableItems(t *testing.T) {
	opts, _ := quietOptions(Options{ItemWidth: 8, Flags: Horizontal})
	grid := Layout(pagerItems(), "NQ", opts, 1)

	require.Len(t, grid.Cells, 3)
	assert.False(t, grid.Cells[0].Available)
	assert.True(t, grid.Cells[1].Available)
}

func TestLayoutStatusLine(t *testing.T) {
	opts, _ := quietOptions(Options{Row: 18, StatusRow: 23, ItemWidth: 8, Flags: Horizontal})
	grid := Layout(pagerItems(), "PNQ", opts, 2)

	assert.Equal(t, "Return to main menu", grid.Status)
	assert.Equal(t, 23, grid.StatusRow)
	assert.Equal(t, (80-len("Return to main menu"))/2, grid.StatusCol)

	opts.StatusRow = 0
	grid = Layout(pagerItems(), "PNQ", opts, 0)
	assert.Equal(t, grid.Bottom+2, grid.StatusRow, "status goes below an unbounded grid")
}

func TestLayoutSidePanel(t *testing.T) {
	opts, _ := quietOptions(Options{Row: 4, StatusRow: 20, ItemWidth: 8, Flags: Vertical | SidePanel})
	grid := Layout(pagerItems(), "PNQ", opts, 1)

	assert.Empty(t, grid.Status)
	assert.Equal(t, "Next page", grid.Cells[1].Description)
	assert.Equal(t, 8+SidePanelGap, grid.Cells[1].DescCol)
}

func TestLayoutTruncatesLongLabels(t *testing.T) {
	opts, hook := quietOptions(Options{ItemWidth: 8, Flags: Horizontal | Button})
	long := strings.Repeat("x", 120)
	grid := Layout([]Item{{Key: 'A', Name: long}}, "A", opts, 0)

	assert.Equal(t, LabelCapacity, grid.Cells[0].Width)
	assert.Equal(t, "["+strings.Repeat("x", LabelCapacity-2)+"]", grid.Cells[0].Text)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Menu label truncated", hook.LastEntry().Message)
}

func TestLayoutWideRunes(t *testing.T) {
	opts, _ := quietOptions(Options{ItemWidth: 6, Flags: Horizontal})
	grid := Layout([]Item{{Key: 'A', Name: "日本"}, {Key: 'B', Name: "x"}}, "AB", opts, 0)

	assert.Equal(t, " 日本 ", grid.Cells[0].Text)
	assert.Equal(t, 6, grid.Cells[0].Width)
	assert.Equal(t, 6+DefaultSpacing, grid.Cells[1].Col)
}
