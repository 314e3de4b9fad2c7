package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/partui/config"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, km.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'8'}}, km.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Select))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Quit))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, km.Quit))
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(`
keybindings:
  quit: ["x", "ctrl+c"]
  page_up: ["b"]
`))
	require.NoError(t, err)

	km := Load(cfg)
	assert.Equal(t, []string{"x", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, "x", km.Quit.Help().Key)
	assert.Equal(t, "quit", km.Quit.Help().Desc)
	assert.Equal(t, []string{"b"}, km.PageUp.Keys())
	// untouched bindings keep their defaults
	assert.Equal(t, DefaultKeyMap().Down.Keys(), km.Down.Keys())
}

func TestLoadNilConfig(t *testing.T) {
	assert.Equal(t, DefaultKeyMap().Quit.Keys(), Load(nil).Quit.Keys())
}

func TestApplyOverridesIgnoresNonPointer(t *testing.T) {
	km := DefaultKeyMap()
	assert.Nil(t, ApplyOverrides(km, Overrides{"quit": {"x"}}))
	assert.Equal(t, DefaultKeyMap().Quit.Keys(), km.Quit.Keys())
}

func TestApplyOverridesReportsUnknownAndDisables(t *testing.T) {
	km := DefaultKeyMap()
	unknown := ApplyOverrides(&km, Overrides{
		"follow":  {},
		"quitt":   {"x"},
		"page_dn": {"j"},
	})

	assert.Equal(t, []string{"page_dn", "quitt"}, unknown)
	assert.False(t, km.Follow.Enabled())
	assert.Equal(t, "follow", km.Follow.Help().Desc)
	assert.Equal(t, DefaultKeyMap().Quit.Keys(), km.Quit.Keys())
	require.Len(t, km.FullHelp(), 3)
	assert.Len(t, km.FullHelp()[1], 1, "only select is left in actions")
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "page_up", camelToSnake("PageUp"))
	assert.Equal(t, "quit", camelToSnake("Quit"))
}

func TestHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 3)

	full := km.FullHelp()
	require.Len(t, full, 3)
	assert.Len(t, full[0], 6)

	km.Follow.SetEnabled(false)
	km.Select.SetEnabled(false)
	assert.Len(t, km.FullHelp(), 2)
}
