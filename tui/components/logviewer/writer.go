package logviewer

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// StreamWriter implements io.Writer and sends complete lines as
// LogLineMsg to a running program. Partial lines wait for their newline.
type StreamWriter struct {
	program  *tea.Program
	source   string
	buffer   strings.Builder
	mu       sync.Mutex
	NoPrefix bool // If true, LogLineMsg will have NoPrefix set
}

// NewStreamWriter creates a StreamWriter tagging its lines with source.
func NewStreamWriter(program *tea.Program, source string) *StreamWriter {
	return &StreamWriter{
		program: program,
		source:  source,
	}
}

// Write implements io.Writer.
func (w *StreamWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buffer.Write(p)
	lines := strings.Split(w.buffer.String(), "\n")

	w.buffer.Reset()
	w.buffer.WriteString(lines[len(lines)-1])

	for _, line := range lines[:len(lines)-1] {
		if w.program != nil {
			w.program.Send(LogLineMsg{
				Source:   w.source,
				Line:     line,
				NoPrefix: w.NoPrefix,
			})
		}
	}

	return len(p), nil
}
