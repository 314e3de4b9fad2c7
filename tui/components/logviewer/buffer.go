package logviewer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
)

const (
	// MaxLines caps the number of lines a Buffer keeps.
	MaxLines = 200
	// LineLength is the widest line a Buffer stores; longer lines are cut.
	LineLength = 255
)

// Buffer collects the text lines of an analysis report for Display. It
// is an io.Writer; partial lines are held until a newline arrives.
type Buffer struct {
	mu      sync.Mutex
	lines   []string
	partial strings.Builder
	dropped int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write implements io.Writer. Every complete line is stored; the tail
// after the last newline waits for more input.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.partial.Write(p)
	content := b.partial.String()
	lines := strings.Split(content, "\n")

	b.partial.Reset()
	b.partial.WriteString(lines[len(lines)-1])
	for _, line := range lines[:len(lines)-1] {
		b.appendLine(strings.TrimSuffix(line, "\r"))
	}
	return len(p), nil
}

// Printf formats into the buffer.
func (b *Buffer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(b, format, args...)
}

func (b *Buffer) appendLine(line string) {
	if len(b.lines) >= MaxLines {
		b.dropped++
		return
	}
	if runewidth.StringWidth(line) > LineLength {
		line = runewidth.Truncate(line, LineLength, "")
	}
	b.lines = append(b.lines, line)
}

// Lines returns the stored lines, including an unterminated last line.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, len(b.lines), len(b.lines)+1)
	copy(lines, b.lines)
	if b.partial.Len() > 0 && len(lines) < MaxLines {
		lines = append(lines, b.partial.String())
	}
	return lines
}

// Len returns len(Lines()).
func (b *Buffer) Len() int {
	return len(b.Lines())
}

// Dropped returns how many lines did not fit.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	b.partial.Reset()
	b.dropped = 0
}

// ToLog writes every line to logger at info level.
func (b *Buffer) ToLog(logger *logrus.Entry) {
	for _, line := range b.Lines() {
		logger.Info(line)
	}
	if d := b.Dropped(); d > 0 {
		logger.WithField("dropped", d).Warn("Screen buffer overflowed")
	}
}
