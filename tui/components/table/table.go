// Package table renders report tables for command line output.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/grovetools/partui/tui/theme"
)

// Options configures a table.
type Options struct {
	Bordered bool
	// RightAlign lists the columns rendered flush right, numbers mostly.
	RightAlign []int
	Theme      *theme.Theme
}

// DefaultOptions returns a bordered table in the default theme.
func DefaultOptions() Options {
	return Options{
		Bordered: true,
		Theme:    theme.DefaultTheme,
	}
}

// New creates a table with headers, styled by opts.
func New(opts Options, headers ...string) *ltable.Table {
	t := opts.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	right := make(map[int]bool, len(opts.RightAlign))
	for _, c := range opts.RightAlign {
		right[c] = true
	}

	table := ltable.New().Headers(headers...)
	if opts.Bordered {
		table = table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border))
	} else {
		table = table.Border(lipgloss.HiddenBorder())
	}

	return table.StyleFunc(func(row, col int) lipgloss.Style {
		style := t.Normal.Padding(0, 1)
		if row == ltable.HeaderRow {
			style = t.Header.Padding(0, 1)
		}
		if right[col] {
			style = style.Align(lipgloss.Right)
		}
		return style
	})
}

// Simple renders headers and rows with the default options.
func Simple(headers []string, rows [][]string, rightAlign ...int) string {
	opts := DefaultOptions()
	opts.RightAlign = rightAlign
	return New(opts, headers...).Rows(rows...).String()
}

// KeyValue renders label and value pairs without a border.
func KeyValue(pairs [][2]string) string {
	t := theme.DefaultTheme
	table := New(Options{Theme: t})
	for _, p := range pairs {
		table = table.Row(t.Muted.Render(p[0]+":"), p[1])
	}
	return table.String()
}
