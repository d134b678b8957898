package top

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_fullHelpView(t *testing.T) {
	got := fullHelpView(
		helpSection{
			heading: "one",
			bindings: []key.Binding{
				key.NewBinding(key.WithHelp("a", "aaa")),
				key.NewBinding(key.WithHelp("b", "bbb")),
			},
		},
		helpSection{
			heading: "two",
			bindings: []key.Binding{
				key.NewBinding(key.WithHelp("c", "ccc")),
			},
		},
	)
	want := "ONE     TWO     \na aaa   c ccc   \nb bbb           "
	assert.Equal(t, want, got)
}
