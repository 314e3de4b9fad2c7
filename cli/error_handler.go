package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/logging"
)

// ErrorHandler turns partui errors into user-facing messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	pretty := logging.NewPrettyLogger().WithWriter(out)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		pretty.Error("configuration not found: %v", detail(err, "path"))
		pretty.Hint("Run 'partui config schema' to see the accepted keys.")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		pretty.Error("%v", err)
		pretty.Hint("Check partui.yml against 'partui config schema'.")

	case errors.ErrCodeTerminalTooSmall:
		pretty.Error("terminal has %v lines, %v are needed", detail(err, "lines"), detail(err, "required"))
		pretty.Hint("Enlarge the terminal window and try again.")

	case errors.ErrCodeTerminalInit:
		pretty.Error("%v", err)
		pretty.Hint("partui needs an interactive terminal on standard input.")

	case errors.ErrCodeInputClosed:
		pretty.Error("terminal input closed")

	case errors.ErrCodeFileRead:
		pretty.Error("cannot read %v", detail(err, "path"))

	default:
		pretty.Error("%v", err)
	}

	if h.Verbose {
		if partErr := asPartError(err); partErr != nil {
			fmt.Fprintf(out, "\nError details:\n%s\n", partErr.ToJSON())
		}
	}
	return err
}

func asPartError(err error) *errors.PartError {
	for err != nil {
		if partErr, ok := err.(*errors.PartError); ok {
			return partErr
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}

func detail(err error, key string) interface{} {
	if partErr := asPartError(err); partErr != nil {
		if v, ok := partErr.Details[key]; ok {
			return v
		}
	}
	return "?"
}
