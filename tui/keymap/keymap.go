package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/partui/config"
	"github.com/grovetools/partui/logging"
)

// KeyMap holds the bindings of the bubbletea screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Follow   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the arrow-first bindings partui ships with.
// The digits mirror the numeric keypad fallback of the menu navigator.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "8"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "2"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "4"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "6"),
			key.WithHelp("→", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "p"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "n"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "5"),
			key.WithHelp("enter", "select"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Load returns DefaultKeyMap with the overrides of the keybindings
// section of cfg applied. A nil config yields the defaults. Names that
// match no binding are logged and skipped.
//
//	keybindings:
//	  page_up: ["pgup", "b"]
//	  follow: []   # disabled
//	  quit: ["x"]
func Load(cfg *config.Config) KeyMap {
	km := DefaultKeyMap()
	if cfg == nil {
		return km
	}

	var overrides Overrides
	if err := cfg.UnmarshalExtension("keybindings", &overrides); err != nil {
		logging.NewLogger("keymap").WithError(err).Warn("Ignoring keybindings section")
		return km
	}
	if unknown := ApplyOverrides(&km, overrides); len(unknown) > 0 {
		logging.NewLogger("keymap").WithField("names", strings.Join(unknown, ",")).Warn("Unknown keybindings")
	}
	return km
}

// ShortHelp returns a slice of key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Follow, k.Quit}
}

// Sections groups the bindings for the full help view.
func (k KeyMap) Sections() []Section {
	return []Section{
		{Name: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown}},
		{Name: "Actions", Bindings: []key.Binding{k.Select, k.Follow}},
		{Name: "System", Bindings: []key.Binding{k.Help, k.Quit}},
	}
}

// FullHelp returns one column per section for bubbles/help.
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	result := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		if bindings := s.Enabled(); len(bindings) > 0 {
			result = append(result, bindings)
		}
	}
	return result
}
