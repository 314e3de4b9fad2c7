package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for partui screens.
// NO_COLOR drops lipgloss to plain text, while CLICOLOR_FORCE or
// COLORTERM=truecolor force full color when output is not a terminal,
// which keeps rendering stable in CI and under test harnesses.
//
// Call it at the start of main before any model renders.
func InitializeTUI() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
