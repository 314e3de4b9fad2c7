package menu

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/config"
	"github.com/grovetools/partui/logging"
)

const (
	// DefaultColumns is the width budget of a horizontal menu line.
	DefaultColumns = config.DefaultColumns
	// DefaultSpacing is the gap between neighbouring items.
	DefaultSpacing = config.DefaultMenuSpacing
	// LabelCapacity is the widest item text a menu formats. Longer labels
	// are truncated.
	LabelCapacity = 79
	// SidePanelGap separates an item from its description in SidePanel mode.
	SidePanelGap = 4
)

var defaults = struct {
	columns   int
	spacing   int
	debugBell bool
}{DefaultColumns, DefaultSpacing, false}

// Configure sets the package defaults used when Options leave a field at
// its zero value.
func Configure(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.Terminal.Columns > 0 {
		defaults.columns = cfg.Terminal.Columns
	}
	if cfg.Menu.Spacing > 0 {
		defaults.spacing = cfg.Menu.Spacing
	}
	defaults.debugBell = cfg.Menu.DebugBell
}

// Options place a menu on screen.
type Options struct {
	// Row and Col are the top-left corner of the item grid.
	Row, Col int
	// StatusRow is the line holding the description of the current item.
	// Vertical menus stop a column one line above it. When not below Row
	// the status goes under the grid.
	StatusRow int
	// ItemWidth is the nominal width of an item; shorter names are centered.
	ItemWidth int
	Flags     Flags
	// Columns is the width budget; zero uses the configured default.
	Columns int
	// Spacing is the gap between items; zero uses the configured default.
	Spacing int
	// DebugBell rings and shows the key code on rejected keys.
	DebugBell bool
	Logger    *logrus.Entry
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = defaults.columns
	}
	if o.Spacing <= 0 {
		o.Spacing = defaults.spacing
	}
	if defaults.debugBell {
		o.DebugBell = true
	}
	if o.Logger == nil {
		o.Logger = logging.NewLogger("menu")
	}
	o.Flags = o.Flags.normalized()
	return o
}

// Cell is one laid out item.
type Cell struct {
	Index int
	Row   int
	Col   int
	// Column is the grid column of a vertical menu, or the slot within its
	// line for a horizontal one.
	Column int
	// Line is the row within the grid.
	Line      int
	Text      string
	Width     int
	Current   bool
	Available bool
	// Description is set only in SidePanel mode, drawn at DescCol.
	Description string
	DescCol     int
}

// Grid is a fully placed menu.
type Grid struct {
	Cells     []Cell
	Status    string
	StatusRow int
	StatusCol int
	// Bottom is the last row any cell occupies.
	Bottom int
}

// Layout places every item of the menu, available or not, with the item
// at cursor marked current.
func Layout(items []Item, available Available, opts Options, cursor int) Grid {
	opts = opts.withDefaults()
	vertical := opts.Flags.Has(Vertical)
	button := opts.Flags.Has(Button)
	sidePanel := opts.Flags.Has(SidePanel) && vertical

	nameMax := 0
	for _, item := range items {
		if !available.Has(item.Key) {
			continue
		}
		if w := runewidth.StringWidth(item.Name); w < opts.ItemWidth && w > nameMax {
			nameMax = w
		}
	}

	// Without a status row the grid is unbounded and the status line
	// goes one blank line below it.
	limit := opts.StatusRow
	if limit <= opts.Row {
		limit = opts.Row + len(items) + 1
	}

	grid := Grid{Bottom: opts.Row}
	x, y := opts.Col, opts.Row
	column, line := 0, 0

	for i, item := range items {
		text := formatLabel(item.Name, opts.ItemWidth, nameMax, button, vertical, opts.Logger)
		width := runewidth.StringWidth(text)
		step := max(width, opts.ItemWidth) + opts.Spacing

		if !vertical && i > 0 && x+width > opts.Columns {
			x = opts.Col
			y++
			line++
			column = 0
		}

		cell := Cell{
			Index:     i,
			Row:       y,
			Col:       x,
			Column:    column,
			Line:      line,
			Text:      text,
			Width:     width,
			Current:   i == cursor,
			Available: available.Has(item.Key),
		}
		if sidePanel {
			cell.Description = item.Description
			cell.DescCol = x + opts.ItemWidth + SidePanelGap
		}
		grid.Cells = append(grid.Cells, cell)
		grid.Bottom = max(grid.Bottom, y)

		if vertical {
			y++
			line++
			if y >= limit-1 {
				y = opts.Row
				x += step
				column++
				line = 0
			}
		} else {
			x += step
			column++
		}
	}

	grid.StatusRow = opts.StatusRow
	if grid.StatusRow <= opts.Row {
		grid.StatusRow = grid.Bottom + 2
	}
	if !sidePanel && cursor >= 0 && cursor < len(items) {
		grid.Status = items[cursor].Description
		grid.StatusCol = max(0, (opts.Columns-runewidth.StringWidth(grid.Status))/2)
	}
	return grid
}

// formatLabel centers name in width columns, bracketing it for buttons.
// Vertical buttons center on nameMax so the column stays aligned.
func formatLabel(name string, width, nameMax int, button, vertical bool, logger *logrus.Entry) string {
	capacity := LabelCapacity
	if button {
		capacity -= 2
	}
	if w := runewidth.StringWidth(name); w > capacity {
		logger.WithFields(logrus.Fields{
			"label": name,
			"width": w,
		}).Warn("Menu label truncated")
		name = runewidth.Truncate(name, capacity, "")
	}

	w := runewidth.StringWidth(name)
	if w >= width {
		if button {
			return "[" + name + "]"
		}
		return name
	}

	pad := w
	if button && vertical {
		pad = nameMax
	}
	left := (width - pad) / 2
	right := (width-pad+1)/2 + pad

	label := strings.Repeat(" ", left) + runewidth.FillRight(name, right)
	if button {
		return "[" + label + "]"
	}
	return label
}
