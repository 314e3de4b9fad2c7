package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/partui/config"
)

const defaultThemeName = "terminal"

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen      = "2"
	terminalYellow     = "3"
	terminalRed        = "1"
	terminalOrange     = "208"
	terminalCyan       = "6"
	terminalBlue       = "4"
	terminalViolet     = "5"
	terminalLightText  = "7"
	terminalMutedText  = "8"
	terminalBorder     = "8"
	terminalSelectedBg = "8"
)

// --- Kanagawa palette ---
const (
	kanagawaDarkGreen       = "#98BB6C"
	kanagawaDarkYellow      = "#FF9E3B"
	kanagawaDarkRed         = "#FF5D62"
	kanagawaDarkOrange      = "#FFA066"
	kanagawaDarkCyan        = "#7E9CD8"
	kanagawaDarkBlue        = "#7FB4CA"
	kanagawaDarkViolet      = "#957FB8"
	kanagawaDarkLightText   = "#DCD7BA"
	kanagawaDarkMutedText   = "#727169"
	kanagawaDarkBorder      = "#363646"
	kanagawaDarkSelectedBg  = "#223249"
	kanagawaLightGreen      = "#4E7C5A"
	kanagawaLightYellow     = "#A68A64"
	kanagawaLightRed        = "#C34043"
	kanagawaLightOrange     = "#CC6B4E"
	kanagawaLightCyan       = "#5B8BBE"
	kanagawaLightBlue       = "#4F7CAC"
	kanagawaLightViolet     = "#674D7A"
	kanagawaLightLightText  = "#2B2F42"
	kanagawaLightMutedText  = "#6C7086"
	kanagawaLightBorder     = "#B5BDC5"
	kanagawaLightSelectedBg = "#E2E6F3"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for partui screens.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Menu styles. Selected is the highlighted item, Unavailable the
	// dimmed items that are drawn but cannot be chosen.
	Selected    lipgloss.Style
	Unavailable lipgloss.Style
	Description lipgloss.Style

	// Hex dump styles
	Offset     lipgloss.Style
	Difference lipgloss.Style

	// Containers and accents
	Box       lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style
	Cursor    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"terminal": newTerminalColors,
	"kanagawa": newKanagawaColors,
	"mono":     newMonoColors,
}

var themeAliases = map[string]string{
	"ansi":          "terminal",
	"default":       "terminal",
	"kanagawa-dark": "kanagawa",
	"none":          "mono",
	"plain":         "mono",
}

// DefaultTheme is the theme selected by PARTUI_THEME or the tui.theme setting.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name.
// Unknown names fall back to the terminal palette.
func NewThemeWithName(name string) *Theme {
	key := resolveThemeName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		// Reverse video keeps the highlight legible on every palette,
		// including mono consoles.
		Selected: lipgloss.NewStyle().
			Reverse(true),

		Unavailable: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Faint(true),

		Description: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Offset: lipgloss.NewStyle().
			Foreground(colors.Blue),

		Difference: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),
	}
}

func resolveThemeName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if os.Getenv("NO_COLOR") != "" {
		return "mono"
	}
	if theme := normalizeThemeName(os.Getenv("PARTUI_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}

	var tuiCfg struct {
		Theme string `yaml:"theme"`
	}
	if err := cfg.UnmarshalExtension("tui", &tuiCfg); err == nil {
		if theme := normalizeThemeName(tuiCfg.Theme); theme != "" {
			return theme
		}
	}

	return defaultThemeName
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBg),
	}
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Blue:               lipgloss.AdaptiveColor{Light: kanagawaLightBlue, Dark: kanagawaDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: kanagawaLightSelectedBg, Dark: kanagawaDarkSelectedBg},
	}
}

// newMonoColors leaves every color unset so only attributes remain.
func newMonoColors() Colors {
	none := lipgloss.NoColor{}
	return Colors{
		Green:              none,
		Yellow:             none,
		Red:                none,
		Orange:             none,
		Cyan:               none,
		Blue:               none,
		Violet:             none,
		LightText:          none,
		MutedText:          none,
		Border:             none,
		SelectedBackground: none,
	}
}
