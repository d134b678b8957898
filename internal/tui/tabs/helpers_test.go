package tabs

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/muesli/termenv"
)

func init() {
	// Disable color in tests
	lipgloss.SetColorProfile(termenv.Ascii)
}

// numberedTabs makes n tabs keyed and labelled "tab-0", "tab-1", ...
func numberedTabs(n int) []tabnav.Tab {
	tabs := make([]tabnav.Tab, n)
	for i := range n {
		tabs[i] = tabnav.Tab{Key: tabnav.Key(fmt.Sprintf("tab-%d", i))}
	}
	return tabs
}

// setupModel constructs a model sized width x height, with the indicator
// settled.
func setupModel(t *testing.T, width, height int, opts Options) Model {
	t.Helper()

	m := New(opts)
	t.Cleanup(m.Close)
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m, _ = m.Update(FrameMsg(time.Now()))
	return m
}

// collect runs a command and any commands it batches, returning the messages
// they produce. Frame ticks are dropped.
func collect(cmd tea.Cmd) (msgs []tea.Msg) {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			msgs = append(msgs, collect(c)...)
		}
	case FrameMsg:
	case nil:
	default:
		msgs = append(msgs, msg)
	}
	return msgs
}

// countTicks runs a command and any commands it batches, returning the number
// of frame ticks among the messages they produce.
func countTicks(cmd tea.Cmd) (n int) {
	if cmd == nil {
		return 0
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			n += countTicks(c)
		}
	case FrameMsg:
		n++
	}
	return n
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func lines(s string) []string {
	return strings.Split(s, "\n")
}
