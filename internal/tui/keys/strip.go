package keys

import "github.com/charmbracelet/bubbles/key"

type strip struct {
	Next          key.Binding
	Prev          key.Binding
	ScrollForward key.Binding
	ScrollBack    key.Binding
	Focus         key.Binding
	More          key.Binding
	Add           key.Binding
	Remove        key.Binding
}

// Strip is the key map for the tab strip.
var Strip = strip{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next tab"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "previous tab"),
	),
	ScrollForward: key.NewBinding(
		key.WithKeys("]", "shift+right"),
		key.WithHelp("]", "scroll forward"),
	),
	ScrollBack: key.NewBinding(
		key.WithKeys("[", "shift+left"),
		key.WithHelp("[", "scroll back"),
	),
	Focus: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "scroll to active tab"),
	),
	More: key.NewBinding(
		key.WithKeys("m", "down"),
		key.WithHelp("m/↓", "more tabs"),
	),
	Add: key.NewBinding(
		key.WithKeys("+", "ctrl+t"),
		key.WithHelp("+", "add tab"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "ctrl+w"),
		key.WithHelp("x", "close tab"),
	),
}

type menu struct {
	Up     key.Binding
	Down   key.Binding
	Escape key.Binding
	Space  key.Binding
	Enter  key.Binding
	Remove key.Binding
}

// Menu is the key map for the overflow dropdown, when it is open.
var Menu = menu{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
	Space: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("<space>", "select"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "close tab"),
	),
}
