// Package hexdump draws paged hexadecimal dumps of sectors and buffers.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/config"
	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

const (
	// BytesPerLine is the width of a Dump line.
	BytesPerLine = 16
	// CompareBytesPerLine is the width of each side of a Compare line.
	CompareBytesPerLine = 8
	// Row is the first screen row of dump lines.
	Row = 7
	// reservedRows are the rows around the dump used by header and menu.
	reservedRows = 10
)

var dumpItems = []menu.Item{
	{Key: 'P', Name: "Previous"},
	{Key: 'N', Name: "Next"},
	{Key: 'Q', Name: "Quit", Description: "Quit dump section"},
}

// PageLines returns how many dump lines fit on a screen of rows lines.
func PageLines(rows int) int {
	return max(1, rows-reservedRows)
}

// LineCount returns the number of lines needed for n bytes at width
// bytes per line.
func LineCount(n, width int) int {
	return (n + width - 1) / width
}

// FormatLine renders line of data: the offset, sixteen hex bytes grouped
// by four and the printable characters.
func FormatLine(data []byte, line int) string {
	var b strings.Builder
	base := line * BytesPerLine
	fmt.Fprintf(&b, "%04X ", base)
	for j := 0; j < BytesPerLine; j++ {
		if base+j < len(data) {
			fmt.Fprintf(&b, "%02x", data[base+j])
		} else {
			b.WriteString("  ")
		}
		if j%4 == 3 {
			b.WriteByte(' ')
		}
	}
	b.WriteString("  ")
	for j := 0; j < BytesPerLine; j++ {
		if base+j < len(data) {
			b.WriteByte(printable(data[base+j]))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func printable(c byte) byte {
	if c < 32 || c >= 127 {
		return '.'
	}
	return c
}

// Dump shows data sixteen bytes per line and lets the user page through
// it until Quit.
func Dump(s screen.Screen, data []byte) error {
	total := LineCount(len(data), BytesPerLine)
	return page(s, total, func(r screen.Renderer, row, line int) {
		screen.WriteAt(r, row, 0, FormatLine(data, line), screen.Normal)
	})
}

// DumpWindow shows data on a full screen under the program header, then
// writes it to logger.
func DumpWindow(s screen.Screen, data []byte, logger *logrus.Entry) error {
	components.DrawHeader(s)
	screen.WriteAt(s, Row-2, 0, fmt.Sprintf("Hexadecimal dump, %s", humanize.IBytes(uint64(len(data)))), screen.Normal)
	if err := Dump(s, data); err != nil {
		return err
	}
	Log(logger, data)
	return nil
}

// Log writes data to logger in Dump format, one entry per line.
func Log(logger *logrus.Entry, data []byte) {
	logger.WithField("size", humanize.IBytes(uint64(len(data)))).Info("Hex dump")
	for line := 0; line < LineCount(len(data), BytesPerLine); line++ {
		logger.Info(FormatLine(data, line))
	}
}

var pageStep int

// Configure applies the dump section of cfg. A nil config restores the
// default page step.
func Configure(cfg *config.Config) {
	pageStep = 0
	if cfg != nil {
		pageStep = cfg.Dump.PageStep
	}
}

// step is how far PageUp and PageDown scroll a page of visible lines.
func step(visible int) int {
	if pageStep > 0 {
		return pageStep
	}
	return max(1, visible-1)
}

// page runs the dump pager loop shared by Dump and Compare. draw renders
// one dump line at a screen row.
func page(s screen.Screen, total int, draw func(r screen.Renderer, row, line int)) error {
	rows, _ := s.Size()
	visible := PageLines(rows)
	scrollable := total > visible

	available := menu.Available("Q")
	if scrollable {
		available = "PNQ"
	}
	opts := menu.Options{
		Row:       rows - 2,
		StatusRow: rows - 1,
		ItemWidth: 8,
		Flags:     menu.Horizontal | menu.Button | menu.AcceptOthers,
	}

	cursor := 2
	pos := 0
	for {
		for i := 0; i < visible; i++ {
			row := Row + i
			s.MoveTo(row, 0)
			s.ClearToEOL()
			if pos+i < total {
				draw(s, row, pos+i)
			}
		}

		k, err := menu.Select(s, dumpItems, available, opts, &cursor)
		if err != nil {
			return err
		}

		switch k {
		case 'P', 'p', keymap.Up:
			if scrollable {
				cursor = 0
				if pos > 0 {
					pos--
				}
			}
		case 'N', 'n', keymap.Down:
			if scrollable {
				cursor = 1
				if pos < total-visible {
					pos++
				}
			}
		case keymap.PageUp:
			if scrollable {
				cursor = 0
				pos = max(0, pos-step(visible))
			}
		case keymap.PageDown:
			if scrollable {
				cursor = 1
				pos = min(total-visible, pos+step(visible))
			}
		case keymap.Escape, 'q', 'Q':
			return nil
		}
	}
}
