package keymap

import "github.com/gdamore/tcell/v2"

// FromTcell translates a tcell key event into a Key.
func FromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		return Enter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Backspace
	case tcell.KeyDelete:
		return Delete
	case tcell.KeyUp:
		return Up
	case tcell.KeyDown:
		return Down
	case tcell.KeyLeft:
		return Left
	case tcell.KeyRight:
		return Right
	case tcell.KeyPgUp:
		return PageUp
	case tcell.KeyPgDn:
		return PageDown
	case tcell.KeyHome:
		return Home
	case tcell.KeyEnd:
		return End
	case tcell.KeyEscape:
		return Escape
	}
	// Remaining control keys (ctrl+a..ctrl+_, tab) carry their ASCII code.
	if k := ev.Key(); k > 0 && k < 0x20 {
		return Key(rune(k))
	}
	return None
}
