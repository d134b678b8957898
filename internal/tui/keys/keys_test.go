package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func Test_keyMapToSlice(t *testing.T) {
	got := KeyMapToSlice(Global)
	want := []key.Binding{
		Global.Position,
		Global.RTL,
		Global.Centered,
		Global.Editable,
		Global.Quit,
		Global.Help,
	}
	assert.Equal(t, want, got)

	assert.Nil(t, KeyMapToSlice("not a key map"))
}

func TestMenuAndStripKeysDoNotShadow(t *testing.T) {
	// Keys reaching the strip while the dropdown is open go to the menu
	// first; only keys the menu doesn't bind may fall through.
	menuKeys := make(map[string]bool)
	for _, b := range KeyMapToSlice(Menu) {
		for _, k := range b.Keys() {
			menuKeys[k] = true
		}
	}
	for _, k := range Strip.Next.Keys() {
		assert.False(t, menuKeys[k], k)
	}
}
