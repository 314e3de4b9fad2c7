package keymap

import "github.com/charmbracelet/bubbles/key"

// Section is a titled group of bindings, shown by the help overlay of the
// log viewer and by the KEYS part of --help.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is a key map that can be listed section by section.
type SectionedKeyMap interface {
	Sections() []Section
}

// Enabled returns the active bindings of s. A binding disabled by an
// empty override list is left out.
func (s Section) Enabled() []key.Binding {
	var out []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}
