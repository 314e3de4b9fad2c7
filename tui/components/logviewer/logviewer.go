// Package logviewer shows report and log text: a line Buffer with the
// blocking Display pane, and a bubbletea Model that follows log files.
package logviewer

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/logging"
	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/components/help"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/theme"
	"github.com/grovetools/partui/tui/utils/scrollbar"
)

// LogLineMsg is sent when a new log line is received.
type LogLineMsg struct {
	Source   string
	Line     string
	NoPrefix bool // If true, formatLogLine will not add a source prefix

	tailed bool
}

// footerItems is the menu under the viewport.
var footerItems = []menu.Item{
	{Key: 'F', Name: "Follow", Description: "Toggle following new lines"},
	{Key: 'Q', Name: "Quit", Description: "Leave the log viewer"},
}

// chromeRows are the rows around the viewport: status bar and footer menu.
const chromeRows = 4

// Model is the TUI component for viewing logs.
type Model struct {
	viewport   viewport.Model
	footer     menu.Model
	help       help.Model
	keys       keymap.KeyMap
	logger     *logrus.Entry
	tails      []*tail.Tail
	mu         *sync.Mutex
	follow     bool
	ready      bool
	width      int
	height     int
	logChannel chan LogLineMsg
	lines      []string
}

// New creates a new log viewer model.
func New(width, height int) Model {
	vp := viewport.New(width, max(1, height-chromeRows))
	footer, err := menu.NewModel(footerItems, menu.AllKeys(footerItems), menu.Options{
		ItemWidth: 8,
		Flags:     menu.Horizontal | menu.Button,
	}, 0)
	if err != nil {
		// footerItems is a fixed, valid table.
		panic(err)
	}
	return Model{
		viewport:   vp,
		footer:     footer,
		help:       help.New(keymap.DefaultKeyMap()),
		keys:       keymap.DefaultKeyMap(),
		logger:     logging.NewLogger("logviewer"),
		mu:         &sync.Mutex{},
		follow:     true,
		width:      width,
		height:     height,
		logChannel: make(chan LogLineMsg, 100),
		lines:      []string{},
	}
}

// WithKeyMap replaces the key bindings.
func (m Model) WithKeyMap(keys keymap.KeyMap) Model {
	m.keys = keys
	m.help.Keys = keys
	return m
}

// Start begins tailing the given files, keyed by the source name shown
// in front of their lines. fromEnd skips the existing content. The
// returned command delivers the first line; a model started before its
// program runs gets the same command from Init, so use only one of them.
func (m *Model) Start(files map[string]string, fromEnd bool) tea.Cmd {
	m.Stop()
	m.mu.Lock()
	defer m.mu.Unlock()

	whence := io.SeekStart
	if fromEnd {
		whence = io.SeekEnd
	}
	single := len(files) == 1
	for source, path := range files {
		config := tail.Config{
			Follow:   true,
			ReOpen:   true,
			Location: &tail.SeekInfo{Offset: 0, Whence: whence},
			Logger:   stdlog.New(io.Discard, "", 0),
		}
		t, err := tail.TailFile(path, config)
		if err != nil {
			m.logger.WithError(err).WithField("path", path).Warn("Cannot follow log file")
			continue
		}
		m.tails = append(m.tails, t)

		go func(src string, t *tail.Tail) {
			for line := range t.Lines {
				m.logChannel <- LogLineMsg{Source: src, Line: line.Text, NoPrefix: single, tailed: true}
			}
		}(source, t)
	}

	return m.waitForLogLine()
}

// Stop halts all tailing operations.
func (m *Model) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tails {
		_ = t.Stop()
	}
	m.tails = nil
}

// setWrappedContent wraps the content to the viewport's current width.
func (m *Model) setWrappedContent() {
	if !m.ready {
		return
	}

	// One column is kept for the scrollbar.
	wrapWidth := max(1, m.viewport.Width-1)
	wrapStyle := lipgloss.NewStyle().Width(wrapWidth)

	wrappedLines := make([]string, 0, len(m.lines))
	for _, line := range m.lines {
		wrappedLines = append(wrappedLines, wrapStyle.Render(line))
	}

	m.viewport.SetContent(strings.Join(wrappedLines, "\n"))
}

// SetContent displays static content, stopping any live tailing.
func (m *Model) SetContent(content string) {
	m.Stop()
	m.lines = strings.Split(content, "\n")
	m.setWrappedContent()
	m.viewport.GotoBottom()
}

// Clear stops tailing and clears the viewer's content.
func (m *Model) Clear() {
	m.Stop()
	m.lines = []string{}
	m.viewport.SetContent("")
}

// GetScrollInfo returns the 1-based top line and the line count.
func (m *Model) GetScrollInfo() (currentLine, totalLines int) {
	totalLines = len(m.lines)
	if totalLines == 0 {
		return 0, 0
	}
	return m.viewport.YOffset + 1, totalLines
}

func (m *Model) waitForLogLine() tea.Cmd {
	ch := m.logChannel
	return func() tea.Msg {
		return <-ch
	}
}

// Init starts receiving lines when Start was called before the program
// began.
func (m Model) Init() tea.Cmd {
	if len(m.tails) > 0 {
		return m.waitForLogLine()
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeRows)
		m.ready = true
		m.help.SetSize(msg.Width, msg.Height)
		m.setWrappedContent()
		if m.follow {
			m.viewport.GotoBottom()
		}
	case LogLineMsg:
		m.lines = append(m.lines, formatLogLine(msg.Source, msg.Line, msg.NoPrefix))
		m.setWrappedContent()
		if m.follow {
			m.viewport.GotoBottom()
		}
		// Lines sent by a StreamWriter do not come from the channel.
		if msg.tailed {
			cmds = append(cmds, m.waitForLogLine())
		}
	case menu.SelectedMsg:
		switch msg.Key {
		case 'F':
			m.toggleFollow()
		case 'Q':
			m.Stop()
			return m, tea.Quit
		}
		m.footer = m.footer.Reset()
	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
		case key.Matches(msg, m.keys.Quit):
			m.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Follow):
			m.toggleFollow()
		case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
			m.follow = m.viewport.AtBottom() && m.follow
		default:
			footer, cmd := m.footer.Update(msg)
			m.footer = footer.(menu.Model)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFollow() {
	m.follow = !m.follow
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// View renders the status bar, the log with its scrollbar and the menu.
func (m Model) View() string {
	if !m.ready {
		return "Initializing log viewer..."
	}
	if m.help.ShowAll {
		return m.help.View()
	}

	mode := "paused"
	if m.follow {
		mode = "following"
	}
	current, total := m.GetScrollInfo()
	status := components.RenderStatusBar(
		theme.DefaultTheme.Bold.Render(mode),
		"",
		fmt.Sprintf("%d/%d", current, total),
		m.width,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		scrollbar.Overlay(&m.viewport),
		m.footer.View(),
	)
}

// IsFollowing returns whether the log viewer is in follow mode.
func (m Model) IsFollowing() bool {
	return m.follow
}

// formatLogLine renders a JSON log entry as "time [source] LEVEL: msg".
// Other lines pass through, prefixed with their source.
func formatLogLine(source, line string, noPrefix bool) string {
	var logMap map[string]interface{}
	if err := json.Unmarshal([]byte(line), &logMap); err != nil {
		if noPrefix {
			return line
		}
		return fmt.Sprintf("[%s] %s", theme.DefaultTheme.Accent.Render(source), line)
	}

	msg, _ := logMap["msg"].(string)
	level, _ := logMap["level"].(string)
	ts, _ := logMap["time"].(string)

	var timeStr string
	parsedTime, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		parsedTime, _ = time.Parse(time.RFC3339, ts)
	}
	if !parsedTime.IsZero() {
		timeStr = parsedTime.Format("15:04:05")
	}

	var levelStyle lipgloss.Style
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		levelStyle = theme.DefaultTheme.Error
	case "warning", "warn":
		levelStyle = theme.DefaultTheme.Warning
	default:
		levelStyle = theme.DefaultTheme.Info
	}

	var parts []string
	if timeStr != "" {
		parts = append(parts, timeStr)
	}
	if !noPrefix {
		parts = append(parts, fmt.Sprintf("[%s]", theme.DefaultTheme.Accent.Render(source)))
	}
	parts = append(parts, levelStyle.Render(strings.ToUpper(level))+":")
	parts = append(parts, msg)

	return strings.Join(parts, " ")
}
