package keymap

import tea "github.com/charmbracelet/bubbletea"

// FromTea translates a bubbletea key message into a Key.
func FromTea(msg tea.KeyMsg) Key {
	switch msg.Type {
	case tea.KeyEnter:
		return Enter
	case tea.KeyBackspace:
		return Backspace
	case tea.KeyDelete:
		return Delete
	case tea.KeyUp:
		return Up
	case tea.KeyDown:
		return Down
	case tea.KeyLeft:
		return Left
	case tea.KeyRight:
		return Right
	case tea.KeyPgUp:
		return PageUp
	case tea.KeyPgDown:
		return PageDown
	case tea.KeyHome:
		return Home
	case tea.KeyEnd:
		return End
	case tea.KeyEsc:
		return Escape
	case tea.KeySpace:
		return ' '
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			return Key(msg.Runes[0])
		}
		return None
	}
	if msg.Type >= 0 && msg.Type < 0x20 {
		return Key(rune(msg.Type))
	}
	return None
}
