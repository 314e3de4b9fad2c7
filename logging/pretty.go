package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// PrettyLogger prints the short summaries commands leave on the console
// once a screen has closed: a result line, aligned fields and hints.
// It never goes through logrus, so --json and the log file are unaffected.
type PrettyLogger struct {
	writer   io.Writer
	styles   PrettyStyles
	keyWidth int
}

// PrettyStyles holds one lipgloss style per kind of line.
type PrettyStyles struct {
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
}

// DefaultPrettyStyles uses the 16 base colors so output stays readable on
// the text consoles a recovery boot disk offers.
func DefaultPrettyStyles() PrettyStyles {
	return PrettyStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hint:    lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	}
}

// NewPrettyLogger writes to stderr, keys padded to 12 columns.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer:   os.Stderr,
		styles:   DefaultPrettyStyles(),
		keyWidth: 12,
	}
}

// WithWriter sets where the summary goes.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

func (p *PrettyLogger) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (p *PrettyLogger) Info(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Info.Render(fmt.Sprintf(format, args...)))
}

func (p *PrettyLogger) Warn(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Warning.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints "Error: " and the message.
func (p *PrettyLogger) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.writer, p.styles.Error.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Hint prints a follow-up suggestion under an error or warning.
func (p *PrettyLogger) Hint(text string) {
	fmt.Fprintln(p.writer, p.styles.Hint.Render(text))
}

func (p *PrettyLogger) key(label string) string {
	return p.styles.Key.Render(fmt.Sprintf("%-*s", p.keyWidth, label+":"))
}

// Field prints an aligned key and value.
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s %s\n", p.key(key), p.styles.Value.Render(fmt.Sprint(value)))
}

func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.writer, "%s %s\n", p.key(label), p.styles.Path.Render(path))
}

// Size prints a byte count both rounded and exact, "500 KiB (512000 bytes)".
func (p *PrettyLogger) Size(label string, n int64) {
	fmt.Fprintf(p.writer, "%s %s\n", p.key(label),
		p.styles.Value.Render(fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(n)), n)))
}

// Divider prints a rule width columns wide.
func (p *PrettyLogger) Divider(width int) {
	fmt.Fprintln(p.writer, p.styles.Key.Render(strings.Repeat("─", width)))
}
