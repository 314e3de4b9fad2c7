package prompt

import (
	"strings"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/screen"
)

func newScreen(keys ...keymap.Key) *screen.Buffer {
	b := screen.NewBuffer(24, 80)
	b.Push(keys...)
	return b
}

func typed(text string, keys ...keymap.Key) []keymap.Key {
	var out []keymap.Key
	for _, r := range text {
		out = append(out, keymap.Key(r))
	}
	return append(out, keys...)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name    string
		keys    []keymap.Key
		def     string
		maxLen  int
		want    string
		usedDef bool
	}{
		{"accept default", typed("", keymap.Enter), "42", 10, "42", true},
		{"replace default", typed("7", keymap.Enter), "42", 10, "7", false},
		{"erase default", typed("", keymap.Backspace, '5', keymap.Enter), "42", 10, "5", false},
		{"erase default to empty", typed("", keymap.Delete, keymap.Enter), "42", 10, "", false},
		{"edit", typed("abc", keymap.Backspace, 'd', keymap.CR), "", 10, "abd", false},
		{"length limit", typed("12345", keymap.LF), "", 3, "123", false},
		{"special keys ignored", typed("", keymap.Up, keymap.Key(1), 'x', keymap.PadEnter), "", 10, "x", false},
		{"no default", typed("", keymap.Enter), "", 10, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(tt.keys...)
			s.MoveTo(3, 10)

			got, usedDef, err := GetString(s, tt.maxLen, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.usedDef, usedDef)
			assert.Equal(t, tt.want, strings.TrimSpace(s.Line(3)))
			assert.False(t, s.CursorVisible())
		})
	}
}

func TestGetStringInputClosed(t *testing.T) {
	s := newScreen('a')
	_, _, err := GetString(s, 10, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInputClosed))
}

func TestAskNumber(t *testing.T) {
	tests := []struct {
		name     string
		keys     []keymap.Key
		min, max uint64
		want     uint64
	}{
		{"in range", typed("16", keymap.Enter), 1, 255, 16},
		{"out of range", typed("999", keymap.Enter), 1, 255, 255},
		{"below range", typed("0", keymap.Enter), 1, 255, 255},
		{"default", typed("", keymap.Enter), 1, 255, 255},
		{"cleared", typed("", keymap.Backspace, keymap.Enter), 1, 255, 255},
		{"trailing text", typed("12 heads", keymap.Enter), 1, 255, 12},
		{"no range", typed("1000", keymap.Enter), 0, 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(tt.keys...)
			s.MoveTo(5, 0)

			got, err := AskNumber(s, 255, tt.min, tt.max, "Number of heads %s", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.min != tt.max {
				assert.Contains(t, s.Line(5), "Number of heads (1-255) :")
			} else {
				assert.NotContains(t, s.Line(5), "(")
			}
		})
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"42", 42, true},
		{"  42", 42, true},
		{"+7", 7, true},
		{"12abc", 12, true},
		{"abc", 0, true},
		{"-5", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAskYN(t *testing.T) {
	s := newScreen('x', keymap.Enter, 'y')
	s.MoveTo(4, 0)
	s.WriteText("Continue? ", screen.Normal)

	yes, err := AskYN(s)
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Equal(t, "Continue? Y", s.Line(4))

	row, col := s.Cursor()
	assert.Equal(t, 5, row)
	assert.Equal(t, 0, col)

	s = newScreen('N')
	yes, err = AskYN(s)
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestAskConfirmation(t *testing.T) {
	s := newScreen('n')
	yes, err := AskConfirmation(s, "Write partition table to %s, confirm ? (Y/N)", "/dev/sdb")
	require.NoError(t, err)
	assert.False(t, yes)

	row, _ := s.Find("Write partition table to /dev/sdb")
	assert.Equal(t, 4, row)
	assert.True(t, strings.HasSuffix(s.Line(4), "(Y/N)N"))
}

func TestDisplayMessage(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := newScreen(keymap.Enter)

	require.NoError(t, DisplayMessage(s, logrus.NewEntry(logger), "Image created successfully."))
	assert.Equal(t, "Image created successfully.", s.Line(5))
	assert.Equal(t, "Image created successfully.", hook.LastEntry().Message)
	assert.Empty(t, s.Line(18), "the Ok button is cleared")
}

func TestNotImplemented(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := newScreen('x')

	require.NoError(t, NotImplemented(s, logrus.NewEntry(logger), "resize"))
	assert.Equal(t, "Function resize not implemented", s.Line(7))
	assert.Equal(t, "[ Abort ]", s.Line(22))
	assert.Equal(t, screen.Reverse, s.AttrAt(22, 0))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 0, s.Pending())
}

func TestCheckEnterKeyOrS(t *testing.T) {
	s := newScreen()
	ok, err := CheckEnterKeyOrS(s)
	require.NoError(t, err)
	assert.False(t, ok, "nothing pending")

	for _, k := range []keymap.Key{'s', 'S', keymap.Enter, keymap.CR, keymap.PadEnter} {
		s.Push(k)
		ok, err = CheckEnterKeyOrS(s)
		require.NoError(t, err)
		assert.True(t, ok, "key %s", k)
	}

	s.Push('x')
	ok, err = CheckEnterKeyOrS(s)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Pending())
}

func TestAskLogLocation(t *testing.T) {
	s := newScreen(typed("/tmp/partui.log", keymap.Enter)...)
	name, err := AskLogLocation(s, "partui.log", syscall.EACCES)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/partui.log", name)
	assert.Equal(t, "Cannot open partui.log: permission denied", s.Line(6))
	assert.Equal(t, "Please enter the full log filename or press Enter", s.Line(8))
	assert.Equal(t, screen.Bold, s.AttrAt(8, len("Please enter the full log filename or press ")))
	assert.Equal(t, "/tmp/partui.log", s.Line(10))

	s = newScreen(keymap.Enter)
	name, err = AskLogLocation(s, "", nil)
	require.NoError(t, err)
	assert.Empty(t, name, "empty answer aborts")
	assert.Empty(t, s.Line(6))
}
