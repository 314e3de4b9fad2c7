package menu

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/theme"
)

// SelectedMsg is sent when a menu model commits.
type SelectedMsg struct {
	Key    keymap.Key
	Raw    keymap.Key
	Cursor int
}

// Model runs a menu inside a bubbletea program. It shares the Navigator
// and Layout with Select, so a menu behaves the same in both.
type Model struct {
	items     []Item
	available Available
	opts      Options
	nav       *Navigator
	theme     *theme.Theme

	quitOnSelect bool
	selected     *SelectedMsg
	width        int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithQuitOnSelect ends the program once the menu commits.
func WithQuitOnSelect() ModelOption {
	return func(m *Model) { m.quitOnSelect = true }
}

// WithTheme overrides the default theme.
func WithTheme(t *theme.Theme) ModelOption {
	return func(m *Model) { m.theme = t }
}

// NewModel creates a menu model. Row and Col of opts are ignored; the
// view starts at its own top-left corner.
func NewModel(items []Item, available Available, opts Options, cursor int, options ...ModelOption) (Model, error) {
	opts = opts.withDefaults()
	opts.StatusRow -= opts.Row
	opts.Row, opts.Col = 0, 0

	nav, err := NewNavigator(items, available, opts.Flags, cursor)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		items:     items,
		available: available,
		opts:      opts,
		nav:       nav,
		theme:     theme.DefaultTheme,
	}
	for _, o := range options {
		o(&m)
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.selected != nil {
			return m, nil
		}
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		tr := m.nav.Handle(keymap.FromTea(msg))
		if tr.Outcome != Commit {
			return m, nil
		}
		sel := SelectedMsg{Key: tr.Key, Raw: tr.Raw, Cursor: tr.Cursor}
		m.selected = &sel
		cmd := func() tea.Msg { return sel }
		if m.quitOnSelect {
			return m, tea.Sequence(cmd, tea.Quit)
		}
		return m, cmd
	}
	return m, nil
}

// Selected returns the committed choice, if any.
func (m Model) Selected() (SelectedMsg, bool) {
	if m.selected == nil {
		return SelectedMsg{}, false
	}
	return *m.selected, true
}

// Cursor returns the index of the current item.
func (m Model) Cursor() int {
	return m.nav.Cursor()
}

// Reset lets a committed model take keys again.
func (m Model) Reset() Model {
	m.nav.Reset()
	m.selected = nil
	return m
}

func (m Model) View() string {
	opts := m.opts
	if m.width > 0 && m.width < opts.Columns {
		opts.Columns = m.width
	}
	grid := Layout(m.items, m.available, opts, m.nav.Cursor())

	rows := make(map[int][]Cell)
	last := grid.Bottom
	for _, cell := range grid.Cells {
		rows[cell.Row] = append(rows[cell.Row], cell)
	}

	var b strings.Builder
	for row := 0; row <= last; row++ {
		cells := rows[row]
		sort.Slice(cells, func(i, j int) bool { return cells[i].Col < cells[j].Col })
		col := 0
		for _, cell := range cells {
			if cell.Col > col {
				b.WriteString(strings.Repeat(" ", cell.Col-col))
				col = cell.Col
			}
			b.WriteString(m.styleFor(cell).Render(cell.Text))
			col += cell.Width
			if cell.Description != "" {
				if cell.DescCol > col {
					b.WriteString(strings.Repeat(" ", cell.DescCol-col))
					col = cell.DescCol
				}
				b.WriteString(m.theme.Description.Render(cell.Description))
				col += lipgloss.Width(cell.Description)
			}
		}
		if row < last {
			b.WriteByte('\n')
		}
	}

	if grid.Status != "" {
		for row := last + 1; row < grid.StatusRow; row++ {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", grid.StatusCol))
		b.WriteString(m.theme.Description.Render(grid.Status))
	}
	return b.String()
}

func (m Model) styleFor(cell Cell) lipgloss.Style {
	switch {
	case cell.Current:
		return m.theme.Selected
	case !cell.Available:
		return m.theme.Unavailable
	default:
		return m.theme.Normal
	}
}
