package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/tui"
)

var (
	helpHeadingStyle = tui.Bold.Copy().Foreground(tui.HelpDesc).Margin(0, 3, 0, 0)
	helpKeyStyle     = tui.Bold.Copy().Foreground(tui.HelpKey).Margin(0, 1, 0, 0)
	helpDescStyle    = tui.Regular.Copy().Foreground(tui.HelpDesc).Margin(0, 3, 0, 0)
)

type helpSection struct {
	heading  string
	bindings []key.Binding
}

// fullHelpView renders a column of key bindings for each section.
func fullHelpView(sections ...helpSection) string {
	cols := make([]string, len(sections))
	for i, s := range sections {
		keys := make([]string, len(s.bindings))
		descs := make([]string, len(s.bindings))
		for j, kb := range s.bindings {
			keys[j] = helpKeyStyle.Render(kb.Help().Key)
			descs[j] = helpDescStyle.Render(kb.Help().Desc)
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Top,
			helpHeadingStyle.Render(strings.ToUpper(s.heading)),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, cols...)
}

// newShortHelp constructs the single line of help shown in the footer.
func newShortHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = tui.Bold.Copy().Foreground(tui.HelpKey)
	h.Styles.ShortDesc = tui.Regular.Copy().Foreground(tui.HelpDesc)
	h.Styles.ShortSeparator = tui.Regular.Copy().Foreground(tui.HelpDesc)
	h.ShortSeparator = " • "
	return h
}
