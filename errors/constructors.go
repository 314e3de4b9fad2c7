package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PartError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PartError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// TerminalTooSmall reports a terminal with fewer lines than the widgets need
func TerminalTooSmall(lines, required int) *PartError {
	return New(ErrCodeTerminalTooSmall,
		fmt.Sprintf("terminal has only %d lines, %d are required", lines, required)).
		WithDetail("lines", lines).
		WithDetail("required", required)
}

// InvalidMenu reports a menu table the navigator refuses to run
func InvalidMenu(reason string) *PartError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid menu: %s", reason))
}

// InputClosed wraps a failure to read the next key
func InputClosed(err error) *PartError {
	return Wrap(err, ErrCodeInputClosed, "terminal input closed")
}

// FileRead wraps a failure to read a file the user asked to display
func FileRead(path string, err error) *PartError {
	return Wrap(err, ErrCodeFileRead, fmt.Sprintf("failed to read %s", path)).
		WithDetail("path", path)
}
