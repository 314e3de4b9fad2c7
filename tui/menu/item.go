// Package menu implements the keyboard menu used by every partui screen:
// a list of keyed items, a runtime set of available keys, a navigator
// state machine and a layout engine that places the items on a screen.
package menu

import (
	"strings"

	"github.com/grovetools/partui/tui/keymap"
)

// Item is one entry of a menu.
type Item struct {
	Key         keymap.Key
	Name        string
	Description string
}

// Available is the set of item keys that can currently be chosen.
// Items whose key is not in the set are drawn but skipped.
type Available string

// Has reports whether k is a member, matching exactly.
func (a Available) Has(k keymap.Key) bool {
	if k == keymap.None || k.IsSpecial() {
		return false
	}
	return strings.ContainsRune(string(a), rune(k))
}

// Match looks k up ignoring case and returns the member as written in
// the set.
func (a Available) Match(k keymap.Key) (keymap.Key, bool) {
	if a.Has(k) {
		return k, true
	}
	if k == keymap.None || k.IsSpecial() {
		return keymap.None, false
	}
	for _, r := range string(a) {
		if keymap.Key(r).Upper() == k.Upper() {
			return keymap.Key(r), true
		}
	}
	return keymap.None, false
}

// AllKeys returns an availability set holding every item key.
func AllKeys(items []Item) Available {
	var sb strings.Builder
	for _, item := range items {
		if item.Key != keymap.None && !item.Key.IsSpecial() {
			sb.WriteRune(rune(item.Key))
		}
	}
	return Available(sb.String())
}

// Flags select the layout and the key handling of a menu.
type Flags uint

const (
	// Horizontal lays items out left to right; Left/Right move.
	Horizontal Flags = 1 << iota
	// Vertical lays items out top to bottom; Up/Down move.
	Vertical
	// Button draws every item in brackets.
	Button
	// ArrowAsEnter makes Left/Right commit in a Vertical menu.
	ArrowAsEnter
	// AcceptOthers commits any non-zero key, listed or not.
	AcceptOthers
	// SidePanel draws each description beside its item instead of on
	// the status line.
	SidePanel
)

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) normalized() Flags {
	if f&(Horizontal|Vertical) == 0 {
		f |= Horizontal
	}
	return f
}
