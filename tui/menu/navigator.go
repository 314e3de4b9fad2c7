package menu

import (
	"fmt"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/keymap"
)

// State is the navigator state.
type State int

const (
	Navigating State = iota
	Committed
)

func (s State) String() string {
	if s == Committed {
		return "committed"
	}
	return "navigating"
}

// Outcome classifies what a key did.
type Outcome int

const (
	// Rejected: the key means nothing here.
	Rejected Outcome = iota
	// Moved: the cursor went to another available item.
	Moved
	// Consumed: an arrow across the layout axis; nothing changes.
	Consumed
	// Commit: the menu is done, Transition.Key holds the result.
	Commit
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Consumed:
		return "consumed"
	case Commit:
		return "committed"
	default:
		return "rejected"
	}
}

// Transition is the result of one key.
type Transition struct {
	Outcome Outcome
	// Key is the committed key: the canonical item key, or the key itself
	// when AcceptOthers let an unlisted key through.
	Key keymap.Key
	// Raw is the key exactly as pressed, before keypad translation.
	Raw    keymap.Key
	Cursor int
}

// Navigator is the menu state machine. It never draws; Layout and the
// Select functions turn its cursor into screen output.
type Navigator struct {
	items     []Item
	available Available
	flags     Flags
	cursor    int
	state     State
	result    Transition
}

// NewNavigator validates the menu and places the cursor on the first
// available item at or after cursor, wrapping around. An out of range
// cursor starts from 0.
func NewNavigator(items []Item, available Available, flags Flags, cursor int) (*Navigator, error) {
	if len(items) == 0 {
		return nil, errors.InvalidMenu("no items")
	}

	seen := make(map[keymap.Key]int, len(items))
	hasAvailable := false
	for i, item := range items {
		if item.Key == keymap.None {
			return nil, errors.InvalidMenu(fmt.Sprintf("item %d (%q) has no key", i, item.Name))
		}
		if j, dup := seen[item.Key]; dup {
			return nil, errors.InvalidMenu(fmt.Sprintf("items %d and %d share key %s", j, i, item.Key))
		}
		seen[item.Key] = i
		if available.Has(item.Key) {
			hasAvailable = true
		}
	}
	if !hasAvailable {
		return nil, errors.InvalidMenu(fmt.Sprintf("availability %q matches no item", string(available))).
			WithDetail("available", string(available))
	}

	if cursor < 0 || cursor >= len(items) {
		cursor = 0
	}

	n := &Navigator{
		items:     items,
		available: available,
		flags:     flags.normalized(),
		cursor:    cursor,
	}
	n.normalize()
	return n, nil
}

// normalize advances the cursor, wrapping, until it sits on an available
// item. NewNavigator guarantees one exists.
func (n *Navigator) normalize() {
	for !n.available.Has(n.items[n.cursor].Key) {
		n.cursor = (n.cursor + 1) % len(n.items)
	}
}

func (n *Navigator) move(delta int) {
	count := len(n.items)
	for {
		n.cursor = (n.cursor + delta + count) % count
		if n.available.Has(n.items[n.cursor].Key) {
			return
		}
	}
}

// Cursor returns the index of the current item.
func (n *Navigator) Cursor() int { return n.cursor }

// State returns the navigator state.
func (n *Navigator) State() State { return n.state }

// Flags returns the effective flags.
func (n *Navigator) Flags() Flags { return n.flags }

// Result returns the committing transition once the state is Committed.
func (n *Navigator) Result() (Transition, bool) {
	return n.result, n.state == Committed
}

// Reset returns a committed navigator to Navigating, keeping the cursor.
func (n *Navigator) Reset() {
	n.state = Navigating
	n.result = Transition{}
}

// keypad maps the digits of a numeric keypad without NumLock handling.
var keypad = map[keymap.Key]keymap.Key{
	'2': keymap.Down,
	'4': keymap.Left,
	'5': keymap.Enter,
	'6': keymap.Right,
	'8': keymap.Up,
}

// Handle feeds one key press to the navigator. Once committed, further
// keys are rejected until Reset.
func (n *Navigator) Handle(raw keymap.Key) Transition {
	if n.state == Committed {
		return n.transition(Rejected, keymap.None, raw)
	}

	k := raw
	if !n.available.Has(k) {
		if mapped, ok := keypad[k]; ok {
			k = mapped
		}
	}

	if k.IsArrow() {
		vertical := k == keymap.Up || k == keymap.Down
		if (vertical && n.flags.Has(Vertical)) || (!vertical && n.flags.Has(Horizontal)) {
			if k == keymap.Up || k == keymap.Left {
				n.move(-1)
			} else {
				n.move(1)
			}
			return n.transition(Moved, keymap.None, raw)
		}
		if !vertical && n.flags.Has(Vertical|ArrowAsEnter) {
			return n.commit(n.items[n.cursor].Key, raw)
		}
		if n.flags.Has(AcceptOthers) {
			return n.commit(k, raw)
		}
		return n.transition(Consumed, keymap.None, raw)
	}

	if k.IsEnter() {
		return n.commit(n.items[n.cursor].Key, raw)
	}

	if member, ok := n.available.Match(k); ok {
		for i, item := range n.items {
			if item.Key == member {
				n.cursor = i
				break
			}
		}
		return n.commit(member, raw)
	}

	if k != keymap.None && n.flags.Has(AcceptOthers) {
		return n.commit(k, raw)
	}

	return n.transition(Rejected, keymap.None, raw)
}

func (n *Navigator) commit(k, raw keymap.Key) Transition {
	n.state = Committed
	n.result = n.transition(Commit, k, raw)
	return n.result
}

func (n *Navigator) transition(outcome Outcome, k, raw keymap.Key) Transition {
	return Transition{Outcome: outcome, Key: k, Raw: raw, Cursor: n.cursor}
}
