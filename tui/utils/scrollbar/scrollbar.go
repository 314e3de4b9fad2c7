package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/grovetools/partui/tui/theme"
)

const (
	thumbChar = "█"
	trackChar = "░"
)

// Track computes the thumb of a scrollbar of the given height for content
// of total lines of which visible are on screen, starting at offset.
// It returns the first thumb row and the thumb size. A zero size means
// there is nothing to scroll.
func Track(total, visible, offset, height int) (start, size int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= visible {
		return 0, height
	}

	size = max(1, (height*visible)/total)

	maxOffset := total - visible
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}

	maxStart := height - size
	start = int(float64(maxStart)*float64(offset)/float64(maxOffset) + 0.5)
	if start > maxStart {
		start = maxStart
	}
	return start, size
}

// Plain returns the unstyled scrollbar column, one character per row.
func Plain(total, visible, offset, height int) []string {
	if height <= 0 {
		return []string{}
	}
	rows := make([]string, height)
	start, size := Track(total, visible, offset, height)
	for i := range rows {
		switch {
		case size == 0:
			rows[i] = " "
		case i >= start && i < start+size:
			rows[i] = thumbChar
		default:
			rows[i] = trackChar
		}
	}
	return rows
}

// Generate creates styled scrollbar characters based on viewport position.
func Generate(vp *viewport.Model, height int) []string {
	rows := Plain(vp.TotalLineCount(), vp.Height, vp.YOffset, height)
	for i, r := range rows {
		rows[i] = theme.DefaultTheme.Muted.Render(r)
	}
	return rows
}

// Overlay adds a scrollbar to the right side of viewport content.
func Overlay(vp *viewport.Model) string {
	lines := strings.Split(vp.View(), "\n")
	bar := Generate(vp, len(lines))

	for i := range lines {
		char := " "
		if i < len(bar) {
			char = bar[i]
		}
		lines[i] += char
	}

	return strings.Join(lines, "\n")
}
