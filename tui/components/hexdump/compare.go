package hexdump

import (
	"fmt"
	"strings"

	"github.com/grovetools/partui/tui/screen"
)

// Segment is a run of text sharing one attribute.
type Segment struct {
	Text string
	Attr screen.Attr
}

// CompareLine renders line of a side-by-side comparison: eight bytes of
// a as hex and text, then the same eight bytes of b. Bytes that differ,
// or exist on one side only, are reversed.
func CompareLine(a, b []byte, line int) []Segment {
	base := line * CompareBytesPerLine
	segs := []Segment{{Text: fmt.Sprintf("%04X ", base)}}
	add := func(text string, attr screen.Attr) {
		if last := &segs[len(segs)-1]; last.Attr == attr {
			last.Text += text
			return
		}
		segs = append(segs, Segment{Text: text, Attr: attr})
	}

	side := func(data, other []byte) {
		for j := 0; j < CompareBytesPerLine; j++ {
			if c, ok := byteAt(data, base+j); ok {
				add(fmt.Sprintf("%02x", c), diffAttr(data, other, base+j))
			} else {
				add("  ", screen.Normal)
			}
			if j%4 == 3 {
				add(" ", screen.Normal)
			}
		}
		add("  ", screen.Normal)
		for j := 0; j < CompareBytesPerLine; j++ {
			if c, ok := byteAt(data, base+j); ok {
				add(string(printable(c)), diffAttr(data, other, base+j))
			} else {
				add(" ", screen.Normal)
			}
		}
	}

	side(a, b)
	add("  ", screen.Normal)
	side(b, a)
	return segs
}

// Text joins the segments of a line.
func Text(segs []Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

func byteAt(data []byte, i int) (byte, bool) {
	if i < len(data) {
		return data[i], true
	}
	return 0, false
}

func diffAttr(data, other []byte, i int) screen.Attr {
	c1, _ := byteAt(data, i)
	c2, ok := byteAt(other, i)
	if !ok || c1 != c2 {
		return screen.Reverse
	}
	return screen.Normal
}

// Compare shows a and b side by side, eight bytes per line each, with
// differing bytes reversed.
func Compare(s screen.Screen, a, b []byte) error {
	total := LineCount(max(len(a), len(b)), CompareBytesPerLine)
	return page(s, total, func(r screen.Renderer, row, line int) {
		r.MoveTo(row, 0)
		for _, seg := range CompareLine(a, b, line) {
			r.WriteText(seg.Text, seg.Attr)
		}
	})
}
