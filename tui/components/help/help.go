// Package help renders the key bindings of a screen, as a one-line hint
// or as a scrollable full view grouped by section.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/theme"
)

// Model is an embeddable help view.
type Model struct {
	Keys    keymap.KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a help model for keys showing the short hint.
func New(keys keymap.KeyMap) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		Title:    "Keys",
		viewport: vp,
	}
}

// Update closes the full view on Help, Quit or Escape and scrolls it
// with the other keys. The short view ignores keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if key.Matches(msg, m.Keys.Help, m.Keys.Quit) || msg.Type == tea.KeyEsc {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Toggle switches between the short hint and the full view.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the area of the full view.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	if m.ShowAll {
		m.setViewportContent()
	}
}

// View renders the hint line, or the full view centered in the area.
func (m Model) View() string {
	if !m.ShowAll {
		return m.viewShort()
	}

	content := m.viewport.View()
	if m.viewport.TotalLineCount() > m.viewport.Height {
		indicator := "↕ more"
		switch {
		case m.viewport.AtTop():
			indicator = "↓ more"
		case m.viewport.AtBottom():
			indicator = "↑ more"
		}
		content = lipgloss.JoinVertical(lipgloss.Right, content,
			m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width).Render(indicator))
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewShort() string {
	var parts []string
	for _, b := range append(m.Keys.ShortHelp(), m.Keys.Help) {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, m.Theme.Bold.Render(h.Key)+" "+m.Theme.Muted.Render(h.Desc))
	}
	return strings.Join(parts, m.Theme.Muted.Render(" • "))
}

// fullContent renders one table per non-empty section.
func (m Model) fullContent() string {
	blocks := []string{m.Theme.Title.Render(m.Title)}
	for _, s := range m.Keys.Sections() {
		bindings := s.Enabled()
		if len(bindings) == 0 {
			continue
		}
		t := ltable.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if col == 0 {
					return m.Theme.Highlight.Padding(0, 1)
				}
				return m.Theme.Normal.Padding(0, 1)
			})
		for _, b := range bindings {
			t.Row(b.Help().Key, b.Help().Desc)
		}
		blocks = append(blocks, m.Theme.Header.Render(s.Name), t.Render())
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) setViewportContent() {
	content := m.Theme.Box.Render(m.fullContent())
	m.viewport.Width = min(lipgloss.Width(content), max(1, m.Width))
	m.viewport.Height = min(lipgloss.Height(content), max(1, m.Height-1))
	m.viewport.SetContent(content)
}
