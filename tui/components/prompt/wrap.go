package prompt

import (
	"strings"

	"github.com/grovetools/partui/tui/screen"
)

// WrapColumns is the width DrawWrapped wraps to.
const WrapColumns = 80

// WrapText splits text into lines of at most width characters. Lines
// break at blanks, except before '?' or '[', and always at newlines. A
// path separator is used instead when the last blank would leave the
// line under three quarters full. Words longer than width are cut.
func WrapText(text string, width int) []string {
	if width <= 0 {
		width = WrapColumns
	}
	r := []rune(text)
	var lines []string

	i := 0
	for i < len(r) {
		end, end2 := i, i
		j := i
	scan:
		for ; j < len(r) && j-i < width; j++ {
			switch {
			case (r[j] == ' ' || r[j] == '\t') && !(j+1 < len(r) && (r[j+1] == '?' || r[j+1] == '[')):
				end, end2 = j, j
			case r[j] == '\n':
				end, end2 = j, j
				break scan
			case r[j] == '\\' || r[j] == '/':
				end2 = j
			}
		}
		if end2 > end && end-i < width*3/4 {
			end = end2
		}
		if end == i {
			end = j - 1
		}
		if j >= len(r) {
			end = len(r) - 1
		}
		end = max(end, i)

		lines = append(lines, strings.TrimRight(string(r[i:end+1]), " \t\n"))

		i = end + 1
		for i < len(r) && (r[i] == ' ' || r[i] == '\t' || r[i] == '\n') {
			i++
		}
	}
	return lines
}

// DrawWrapped writes text wrapped to WrapColumns from row down and
// leaves the cursor after the last character. It returns the row after
// the text.
func DrawWrapped(s screen.Renderer, row int, text string) int {
	for _, line := range WrapText(text, WrapColumns) {
		screen.WriteAt(s, row, 0, line, screen.Normal)
		row++
	}
	return row
}
