package logging

import (
	"io"
	"os"
	"sync"
)

// globalWriter is an io.Writer that delegates to an underlying writer,
// which can be swapped at runtime in a thread-safe manner.
type globalWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

// Write implements the io.Writer interface.
func (gw *globalWriter) Write(p []byte) (n int, err error) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	return gw.w.Write(p)
}

// Set changes the underlying writer.
func (gw *globalWriter) Set(w io.Writer) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.w = w
}

// Ensure the global writer is a singleton.
var defaultGlobalWriter = &globalWriter{w: os.Stderr}

// SetGlobalOutput sets the output destination for all loggers that use it.
// A screen session points it at the log file or io.Discard while it owns the terminal.
func SetGlobalOutput(w io.Writer) {
	defaultGlobalWriter.Set(w)
}

// GetGlobalOutput returns the singleton instance of the global writer.
// Loggers created by NewLogger write their stderr sink through it.
func GetGlobalOutput() io.Writer {
	return defaultGlobalWriter
}

// fileWriter receives every logger's output once a log file is opened
// with OpenFile. Until then it discards.
var fileWriter = &globalWriter{w: io.Discard}

// OpenFile opens path in append mode, creating parent directories, and
// sends the output of every logger to it. The caller closes the file;
// CloseFile stops the redirection first.
func OpenFile(path string) (*os.File, error) {
	file, err := openLogFile(expandPath(path))
	if err != nil {
		return nil, err
	}
	fileWriter.Set(file)
	return file, nil
}

// CloseFile detaches and closes a file returned by OpenFile.
func CloseFile(file *os.File) error {
	fileWriter.Set(io.Discard)
	return file.Close()
}
