// Package components holds the widgets shared by partui screens and the
// string renderers used by its bubbletea views.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/partui/tui/screen"
	"github.com/grovetools/partui/tui/theme"
	"github.com/grovetools/partui/version"
)

// Tagline is drawn under the banner of full-screen views.
const Tagline = "Disk and partition recovery, terminal interface"

// HeaderRows is the number of rows DrawHeader uses, blank line included.
const HeaderRows = 3

// DrawHeader clears r and draws the program banner on its first rows.
func DrawHeader(r screen.Renderer) {
	r.Clear()
	screen.WriteAt(r, 0, 0, version.GetInfo().Banner(), screen.Bold)
	screen.WriteAt(r, 1, 0, Tagline, screen.Dim)
}

// RenderHeader creates a consistent header for TUIs
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(title)

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderStatusBar lays out left, center and right sections across width.
// When they do not fit only left is shown.
func RenderStatusBar(left, center, right string, width int) string {
	t := theme.DefaultTheme

	totalContent := lipgloss.Width(left) + lipgloss.Width(center) + lipgloss.Width(right)
	if totalContent >= width {
		return left
	}

	remainingSpace := width - totalContent
	leftPad := remainingSpace / 2
	rightPad := remainingSpace - leftPad

	var b strings.Builder
	b.WriteString(left)
	if center != "" {
		b.WriteString(strings.Repeat(" ", leftPad))
		b.WriteString(center)
		b.WriteString(strings.Repeat(" ", rightPad))
	} else {
		b.WriteString(strings.Repeat(" ", remainingSpace))
	}
	b.WriteString(right)

	return lipgloss.NewStyle().
		Width(width).
		Foreground(t.Colors.LightText).
		Render(b.String())
}

// RenderDivider creates a horizontal divider
func RenderDivider(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.DefaultTheme.Colors.Border).
		Render(strings.Repeat("─", width))
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(key, value string) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), value)
}
