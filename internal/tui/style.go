package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

var (
	Regular        = lipgloss.NewStyle()
	RoundedBorders = Regular.Copy().Border(lipgloss.RoundedBorder())
	Bold           = Regular.Copy().Bold(true)
	Faint          = Regular.Copy().Faint(true)
	Padded         = Regular.Copy().Padding(0, 1)
)

// Width returns the number of cells occupied by the widest line of a
// rendered string, ignoring ANSI escape sequences.
func Width(s string) int {
	var w int
	for _, line := range splitLines(s) {
		w = max(w, ansi.PrintableRuneWidth(line))
	}
	return w
}

// Height returns the number of lines in a rendered string.
func Height(s string) int {
	if s == "" {
		return 0
	}
	return len(splitLines(s))
}

func splitLines(s string) []string {
	var (
		lines []string
		start int
	)
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
