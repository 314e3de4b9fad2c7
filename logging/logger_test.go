package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	// Test creating a logger
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	// Verify it's a logrus.Entry with the component field
	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}
}

func TestLoggerOutput(t *testing.T) {
	// Create a buffer to capture output
	var buf bytes.Buffer
	
	// Create a new logger and redirect output to buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})
	
	entry := logger.WithField("component", "test")
	entry.Info("Test message")
	
	output := buf.String()
	
	// Check that output contains expected elements
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain [INFO], got: %s", output)
	}
	if !strings.Contains(output, "[test]") {
		t.Errorf("Expected output to contain [test], got: %s", output)
	}
	if !strings.Contains(output, "Test message") {
		t.Errorf("Expected output to contain 'Test message', got: %s", output)
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name   string
		config FormatConfig
		entry  *logrus.Entry
		want   []string // Parts that should be in the output
		notWant []string // Parts that should NOT be in the output
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "test-component",
					"key1":      "value1",
				},
			},
			want:    []string{"[INFO]", "[test-component]", "test message", "key1=value1"},
			notWant: []string{},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "warning message",
				Data: logrus.Fields{
					"component": "test-component",
				},
			},
			want:    []string{"[WARN]", "warning message"},
			notWant: []string{"[test-component]"},
		},
		{
			name:   "caller information with function name",
			config: FormatConfig{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				entry := &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "test message with caller",
					Data: logrus.Fields{
						"component": "test-component",
					},
					Caller: &runtime.Frame{
						File:     "/path/to/file.go",
						Line:     42,
						Function: "github.com/example/package.TestFunction",
					},
				}
				return entry
			}(),
			want:    []string{"[INFO]", "[test-component]", "test message with caller", "[file.go:42 package.TestFunction]"},
			notWant: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &TextFormatter{Config: tt.config}
			
			// Set a fixed time for consistent testing
			tt.entry.Time = tt.entry.Time.UTC()
			
			output, err := formatter.Format(tt.entry)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			
			outputStr := string(output)
			
			// Check for expected parts
			for _, want := range tt.want {
				if !strings.Contains(outputStr, want) {
					t.Errorf("Expected output to contain '%s', got: %s", want, outputStr)
				}
			}
			
			// Check for parts that should NOT be present
			for _, notWant := range tt.notWant {
				if strings.Contains(outputStr, notWant) {
					t.Errorf("Expected output NOT to contain '%s', got: %s", notWant, outputStr)
				}
			}
		})
	}
}

func TestTextFormatterFieldOrder(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Analyse done",
		Data: logrus.Fields{
			"component": "menu",
			"sectors":   1024,
			"found":     2,
			"image":     "my disk.img",
			"note":      "",
		},
	}

	output, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := `[INFO] [menu] Analyse done found=2 image="my disk.img" note="" sectors=1024` + "\n"
	if string(output) != want {
		t.Errorf("Format() = %q, want %q", output, want)
	}
}

func TestLogLevels(t *testing.T) {
	// Test that log level filtering works
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.WarnLevel)
	
	entry := logger.WithField("component", "test")
	
	// These should not appear
	entry.Debug("debug message")
	entry.Info("info message")
	
	// These should appear
	entry.Warn("warn message")
	entry.Error("error message")
	
	output := buf.String()
	
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should not appear at Warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should not appear at Warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should appear at Warn level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should appear at Warn level")
	}
}

func TestEnvironmentVariables(t *testing.T) {
	// Save original env vars
	origLevel := os.Getenv("PARTUI_LOG_LEVEL")
	origCaller := os.Getenv("PARTUI_LOG_CALLER")

	// Clean up after test
	defer func() {
		os.Setenv("PARTUI_LOG_LEVEL", origLevel)
		os.Setenv("PARTUI_LOG_CALLER", origCaller)
		// Clear the loggers cache
		loggersMu.Lock()
		loggers = make(map[string]*logrus.Entry)
		loggersMu.Unlock()
	}()

	// Test log level from env
	os.Setenv("PARTUI_LOG_LEVEL", "debug")
	os.Setenv("PARTUI_LOG_CALLER", "true")

	logger := NewLogger("env-test")

	// The underlying logger should have debug level
	if logger.Logger.Level != logrus.DebugLevel {
		t.Errorf("Expected debug level from env var, got %v", logger.Logger.Level)
	}

	// Should have caller reporting enabled
	if !logger.Logger.ReportCaller {
		t.Error("Expected caller reporting to be enabled from env var")
	}
}

func TestNewLoggerSinks(t *testing.T) {
	t.Run("interactive info logger only writes the file sink", func(t *testing.T) {
		t.Setenv("PARTUI_LOG_LEVEL", "")
		t.Setenv("PARTUI_LOG_FILE", "")
		entry := newLogger("quiet", Config{}, true)
		if entry.Logger.Out != io.Writer(fileWriter) {
			t.Errorf("Expected the file sink as output, got %T", entry.Logger.Out)
		}
	})

	t.Run("open file redirects existing loggers", func(t *testing.T) {
		t.Setenv("PARTUI_LOG_LEVEL", "")
		t.Setenv("PARTUI_LOG_FILE", "")
		entry := newLogger("late-file", Config{Format: FormatConfig{Preset: "json"}}, true)

		path := filepath.Join(t.TempDir(), "nested", "partui.log")
		file, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		entry.Info("after open")
		if err := CloseFile(file); err != nil {
			t.Fatalf("CloseFile: %v", err)
		}
		entry.Info("after close")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected log file: %v", err)
		}
		if !strings.Contains(string(data), "after open") {
			t.Errorf("Expected entry in file, got: %s", data)
		}
		if strings.Contains(string(data), "after close") {
			t.Errorf("Entry written after CloseFile: %s", data)
		}
	})

	t.Run("non-interactive logs to global writer", func(t *testing.T) {
		t.Setenv("PARTUI_LOG_LEVEL", "")
		t.Setenv("PARTUI_LOG_FILE", "")
		var buf bytes.Buffer
		SetGlobalOutput(&buf)
		defer SetGlobalOutput(os.Stderr)

		entry := newLogger("piped", Config{}, false)
		entry.Info("routed")
		if !strings.Contains(buf.String(), "routed") {
			t.Errorf("Expected message in global writer, got: %q", buf.String())
		}
	})

	t.Run("never mode with file sink", func(t *testing.T) {
		t.Setenv("PARTUI_LOG_LEVEL", "")
		t.Setenv("PARTUI_LOG_FILE", "")
		path := filepath.Join(t.TempDir(), "logs", "partui.log")
		cfg := Config{
			File:   FileSinkConfig{Enabled: true, Path: path},
			Format: FormatConfig{Preset: "json", StructuredToStderr: "never"},
		}
		entry := newLogger("file", cfg, false)
		entry.WithField("key", "value").Warn("to file")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected log file: %v", err)
		}
		if !strings.Contains(string(data), `"msg":"to file"`) {
			t.Errorf("Expected JSON entry in file, got: %s", data)
		}
	})

	t.Run("env file overrides config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "env.log")
		t.Setenv("PARTUI_LOG_FILE", path)
		t.Setenv("PARTUI_LOG_LEVEL", "")
		entry := newLogger("env-file", Config{Format: FormatConfig{StructuredToStderr: "never"}}, true)
		entry.Info("hello")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected log file at %s: %v", path, err)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/x.log"); got != filepath.Join(home, "x.log") {
		t.Errorf("expandPath(~/x.log) = %s", got)
	}
	if got := expandPath("/abs/x.log"); got != "/abs/x.log" {
		t.Errorf("expandPath(/abs/x.log) = %s", got)
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("%d bytes identical", 512)
	p.Warn("%d of %d bytes differ", 3, 512)
	p.Field("offset", 0)
	p.Path("file", "/tmp/disk.img")
	p.Size("disk", 512000)
	p.Divider(10)
	p.Error("cannot read %s", "/tmp/missing.img")
	p.Hint("Check the path.")

	out := buf.String()
	for _, want := range []string{
		"512 bytes identical",
		"3 of 512 bytes differ",
		"offset:      0",
		"file:        /tmp/disk.img",
		"500 KiB (512000 bytes)",
		strings.Repeat("─", 10),
		"Error: cannot read /tmp/missing.img",
		"Check the path.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected pretty output to contain %q, got: %s", want, out)
		}
	}
}
