package keymap

import (
	"fmt"
	"unicode"
)

// Key is one decoded key press: a printable or control rune, or one of
// the named special keys below. Special keys sit above unicode.MaxRune so
// they never collide with a real character.
type Key rune

// None is the zero key. It is never a valid item key.
const None Key = 0

// Named special keys.
const (
	Enter Key = unicode.MaxRune + 1 + iota
	PadEnter
	Backspace
	Delete
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
	Escape
)

// Raw line terminators, as a terminal without key translation delivers them.
const (
	CR Key = '\r'
	LF Key = '\n'
)

var specialNames = map[Key]string{
	Enter:     "enter",
	PadEnter:  "padenter",
	Backspace: "backspace",
	Delete:    "delete",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	PageUp:    "pgup",
	PageDown:  "pgdown",
	Home:      "home",
	End:       "end",
	Escape:    "esc",
}

// IsSpecial reports whether k is a named special key.
func (k Key) IsSpecial() bool {
	return k > unicode.MaxRune
}

// IsPrintable reports whether k is a printable character.
func (k Key) IsPrintable() bool {
	return !k.IsSpecial() && k != None && unicode.IsPrint(rune(k))
}

// IsArrow reports whether k is one of the four cursor keys.
func (k Key) IsArrow() bool {
	return k == Up || k == Down || k == Left || k == Right
}

// IsEnter reports whether k ends a line: Enter, keypad Enter, CR or LF.
func (k Key) IsEnter() bool {
	return k == Enter || k == PadEnter || k == CR || k == LF
}

// Upper returns the upper case form of a character key.
func (k Key) Upper() Key {
	if k.IsSpecial() {
		return k
	}
	return Key(unicode.ToUpper(rune(k)))
}

// Lower returns the lower case form of a character key.
func (k Key) Lower() Key {
	if k.IsSpecial() {
		return k
	}
	return Key(unicode.ToLower(rune(k)))
}

// Code returns the numeric key code shown by the debug bell.
func (k Key) Code() int {
	return int(k)
}

func (k Key) String() string {
	if name, ok := specialNames[k]; ok {
		return name
	}
	switch {
	case k == None:
		return "none"
	case k.IsPrintable():
		return string(rune(k))
	case k < 0x20:
		return fmt.Sprintf("ctrl+%c", rune(k)+'@'+0x20)
	default:
		return fmt.Sprintf("key(%#x)", rune(k))
	}
}
