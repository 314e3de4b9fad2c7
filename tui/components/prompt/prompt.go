// Package prompt implements the small blocking dialogs of partui: line
// input, numbers, yes/no questions and messages.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

// InputLength is the longest answer the prompts accept.
const InputLength = 127

// GetString edits a line at the cursor. def is shown until the first
// printable key replaces it; accepting it unchanged returns def and true.
// At most maxLen characters are accepted.
func GetString(s screen.Screen, maxLen int, def string) (string, bool, error) {
	row, col := s.Cursor()
	s.ClearToEOL()

	useDef := false
	if def != "" {
		screen.WriteAt(s, row, col, def, screen.Normal)
		s.MoveTo(row, col)
		useDef = true
	}

	s.SetCursorVisible(true)
	defer s.SetCursorVisible(false)

	var input []rune
	for {
		if err := s.Refresh(); err != nil {
			return "", false, err
		}
		k, err := s.ReadKey()
		if err != nil {
			return "", false, err
		}
		if k.IsEnter() {
			break
		}

		switch k {
		case keymap.Backspace, keymap.Delete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				x := col + runewidth.StringWidth(string(input))
				s.MoveTo(row, x)
				s.ClearToEOL()
			} else if useDef {
				s.MoveTo(row, col)
				s.ClearToEOL()
				useDef = false
			}
		default:
			if len(input) < maxLen && k.IsPrintable() {
				x := col + runewidth.StringWidth(string(input))
				screen.WriteAt(s, row, x, string(rune(k)), screen.Normal)
				if useDef {
					s.ClearToEOL()
					useDef = false
				}
				input = append(input, rune(k))
			}
		}
	}

	if useDef {
		return def, true, nil
	}
	return string(input), false, nil
}

// AskNumber prompts with the formatted question, followed by the allowed
// range when minVal and maxVal differ, and returns the number typed. Empty,
// unchanged or out of range answers return cur.
func AskNumber(s screen.Screen, cur, minVal, maxVal uint64, format string, args ...interface{}) (uint64, error) {
	s.WriteText(fmt.Sprintf(format, args...), screen.Normal)
	if minVal != maxVal {
		s.WriteText(fmt.Sprintf("(%d-%d) :", minVal, maxVal), screen.Normal)
	}

	resp, usedDef, err := GetString(s, InputLength, strconv.FormatUint(cur, 10))
	if err != nil {
		return cur, err
	}
	if usedDef || resp == "" {
		return cur, nil
	}

	v, ok := leadingNumber(resp)
	if !ok {
		return cur, nil
	}
	if minVal == maxVal || (v >= minVal && v <= maxVal) {
		return v, nil
	}
	return cur, nil
}

// leadingNumber parses the digits at the start of s, after blanks. A
// string without leading digits is 0.
func leadingNumber(s string) (uint64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimPrefix(s, "+")
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == 0 && strings.HasPrefix(s, "-") {
		return 0, false
	}
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0, true
	}
	v, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AskYN waits for Y or N, echoes it and reports whether it was Y.
func AskYN(s screen.Screen) (bool, error) {
	s.SetCursorVisible(true)
	defer s.SetCursorVisible(false)
	if err := s.Refresh(); err != nil {
		return false, err
	}
	for {
		k, err := s.ReadKey()
		if err != nil {
			return false, err
		}
		u := k.Upper()
		if u != 'Y' && u != 'N' {
			continue
		}
		s.WriteText(string(rune(u)), screen.Normal)
		row, _ := s.Cursor()
		s.MoveTo(row+1, 0)
		return u == 'Y', nil
	}
}

// AskConfirmation shows the formatted question on a full screen and
// waits for Y or N.
func AskConfirmation(s screen.Screen, format string, args ...interface{}) (bool, error) {
	components.DrawHeader(s)
	DrawWrapped(s, 4, fmt.Sprintf(format, args...))
	return AskYN(s)
}

// DisplayMessage logs msg and shows it until the user presses Ok.
func DisplayMessage(s screen.Screen, logger *logrus.Entry, msg string) error {
	logger.Info(msg)
	components.DrawHeader(s)
	screen.WriteAt(s, 5, 0, msg, screen.Normal)
	_, err := menu.SelectSimple(s, []menu.Item{{Key: 'Q', Name: "Ok"}}, 0)
	return err
}

// NotImplemented tells the user a function is missing and waits for
// any key.
func NotImplemented(s screen.Screen, logger *logrus.Entry, what string) error {
	components.DrawHeader(s)
	screen.WriteAt(s, 7, 0, fmt.Sprintf("Function %s not implemented", what), screen.Normal)
	logger.WithField("function", what).Warn("Function not implemented")
	screen.WriteAt(s, 22, 0, "[ Abort ]", screen.Reverse)
	if err := s.Refresh(); err != nil {
		return err
	}
	_, err := s.ReadKey()
	return err
}

// CheckEnterKeyOrS reports whether Enter or S is waiting, without
// blocking. Other pending keys are consumed.
func CheckEnterKeyOrS(s screen.Input) (bool, error) {
	k, ok, err := s.ReadKeyNonBlocking()
	if err != nil || !ok {
		return false, err
	}
	return k.IsEnter() || k == 's' || k == 'S', nil
}

// AskLogLocation asks for another log file name after filename could
// not be opened. An empty answer means no log file.
func AskLogLocation(s screen.Screen, filename string, cause error) (string, error) {
	components.DrawHeader(s)
	if filename != "" {
		msg := fmt.Sprintf("Cannot open %s", filename)
		if cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, cause)
		}
		screen.WriteAt(s, 6, 0, msg, screen.Normal)
	}
	screen.WriteAt(s, 8, 0, "Please enter the full log filename or press ", screen.Normal)
	s.WriteText("Enter", screen.Bold)
	screen.WriteAt(s, 9, 0, "to abort log file creation.", screen.Normal)
	s.MoveTo(10, 0)

	resp, _, err := GetString(s, InputLength, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}
