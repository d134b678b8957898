package tui

import (
	"strings"
)

// SanitizeColors makes every line of s carry its own colour: a colour left
// active at the end of a line is reset before the newline and restored at the
// start of the next. Lines can then be cropped or padded independently.
func SanitizeColors(s string) string {
	var (
		b       strings.Builder
		inEsc   bool
		seq     strings.Builder
		current string
	)
	for i := range len(s) {
		c := s[i]
		switch {
		case c == '\x1B':
			inEsc = true
			seq.Reset()
			seq.WriteByte(c)
		case inEsc:
			seq.WriteByte(c)
			if isTerminator(c) {
				inEsc = false
				switch {
				case strings.HasSuffix(seq.String(), "[0m"):
					current = ""
				case c == 'm':
					current = seq.String()
				}
			}
		case c == '\n' && current != "":
			b.WriteString("\x1B[0m\n")
			b.WriteString(current)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isTerminator(c byte) bool {
	return (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a)
}
