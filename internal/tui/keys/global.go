package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Position key.Binding
	RTL      key.Binding
	Centered key.Binding
	Editable key.Binding
	Quit     key.Binding
	Help     key.Binding
}

var Global = global{
	Position: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "move strip"),
	),
	RTL: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "toggle right-to-left"),
	),
	Centered: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle centered"),
	),
	Editable: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "toggle editable"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
