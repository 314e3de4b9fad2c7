package logviewer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/partui/tui/menu"
)

func sized(t *testing.T) Model {
	t.Helper()
	m := New(80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func TestFormatLogLine(t *testing.T) {
	assert.Equal(t, "plain output", formatLogLine("disk", "plain output", true))
	assert.Contains(t, formatLogLine("disk", "plain output", false), "disk")
	assert.Contains(t, formatLogLine("disk", "plain output", false), "plain output")

	line := `{"level":"warning","msg":"bad sector","time":"2026-03-01T10:20:30Z"}`
	got := formatLogLine("disk", line, true)
	assert.Contains(t, got, "10:20:30")
	assert.Contains(t, got, "WARNING:")
	assert.Contains(t, got, "bad sector")
	assert.NotContains(t, got, "disk")
}

func TestModelReceivesLines(t *testing.T) {
	m := New(80, 24)
	assert.Equal(t, "Initializing log viewer...", m.View())

	m = sized(t)
	next, cmd := m.Update(LogLineMsg{Source: "partui", Line: "partition table written", NoPrefix: true, tailed: true})
	m = next.(Model)
	require.NotNil(t, cmd, "waits for the next line")

	view := m.View()
	assert.Contains(t, view, "partition table written")
	assert.Contains(t, view, "following")
	assert.Contains(t, view, "1/1")
	assert.Contains(t, view, "[ Follow ]")
	assert.Contains(t, view, "[  Quit  ]")
}

func TestModelFollowToggle(t *testing.T) {
	m := sized(t)
	assert.True(t, m.IsFollowing())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = next.(Model)
	assert.False(t, m.IsFollowing())
	assert.Contains(t, m.View(), "paused")

	next, _ = m.Update(menu.SelectedMsg{Key: 'F'})
	m = next.(Model)
	assert.True(t, m.IsFollowing())
}

func TestModelFooterMenu(t *testing.T) {
	m := sized(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	sel, ok := msg.(menu.SelectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 'Q', rune(sel.Key))

	_, cmd = m.Update(sel)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelQuitKey(t *testing.T) {
	m := sized(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelHelpOverlay(t *testing.T) {
	m := sized(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	view := m.View()
	assert.Contains(t, view, "page down")
	assert.NotContains(t, view, "[ Follow ]")

	// Quit closes the overlay instead of the viewer.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "[ Follow ]")
}

func TestModelSetContent(t *testing.T) {
	m := sized(t)
	m.SetContent("a\nb\nc")
	current, total := m.GetScrollInfo()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, current)

	m.Clear()
	current, total = m.GetScrollInfo()
	assert.Zero(t, current)
	assert.Zero(t, total)
}

func TestModelTailsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partui.log")
	require.NoError(t, os.WriteFile(path, []byte("first line\nsecond line\n"), 0o644))

	m := New(80, 24)
	m.Start(map[string]string{"partui": path}, false)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("second line"))
	}, teatest.WithCheckInterval(20*time.Millisecond), teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(Model)
	_, total := fm.GetScrollInfo()
	assert.Equal(t, 2, total)
}

func TestStreamWriter(t *testing.T) {
	w := NewStreamWriter(nil, "job")
	n, err := w.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "tw", w.buffer.String())
}
