package tabnav

// MenuKey is a keyboard input routed to the overflow menu.
type MenuKey int

const (
	MenuUp MenuKey = iota
	MenuDown
	MenuEscape
	MenuSpace
	MenuEnter
)

// overflowMenu is the dropdown listing tabs that don't fit in the strip.
type overflowMenu struct {
	items []Tab

	open        bool
	highlighted Key
	// highlighted is only meaningful when hasHighlight is true
	hasHighlight bool
}

// setItems replaces the hidden tabs. The menu closes when there is nothing
// left to show, and forgets a highlight on a tab that is no longer hidden.
func (m *overflowMenu) setItems(items []Tab) {
	m.items = items
	if len(items) == 0 {
		m.close()
		return
	}
	if m.hasHighlight && indexOf(items, m.highlighted) < 0 {
		m.hasHighlight = false
		m.highlighted = ""
	}
}

func (m *overflowMenu) setOpen(open bool) {
	if open && len(m.items) == 0 {
		return
	}
	if !open {
		m.close()
		return
	}
	m.open = true
}

func (m *overflowMenu) close() {
	m.open = false
	m.hasHighlight = false
	m.highlighted = ""
}

// handleKey applies a key to the menu. If the key selects the highlighted
// tab, its key is returned along with true.
func (m *overflowMenu) handleKey(k MenuKey) (Key, bool) {
	if !m.open {
		switch k {
		case MenuDown, MenuSpace, MenuEnter:
			m.setOpen(true)
		}
		return "", false
	}

	switch k {
	case MenuUp:
		m.move(-1)
	case MenuDown:
		m.move(1)
	case MenuEscape:
		m.close()
	case MenuSpace, MenuEnter:
		if !m.hasHighlight {
			return "", false
		}
		selected := m.highlighted
		m.close()
		return selected, true
	}
	return "", false
}

// move shifts the highlight by delta, wrapping at either end and skipping
// disabled tabs.
func (m *overflowMenu) move(delta int) {
	var enabled []Tab
	for _, t := range m.items {
		if !t.Disabled {
			enabled = append(enabled, t)
		}
	}
	n := len(enabled)
	if n == 0 {
		return
	}

	current := -1
	if m.hasHighlight {
		current = indexOf(enabled, m.highlighted)
	}
	var next int
	switch {
	case current >= 0:
		next = ((current+delta)%n + n) % n
	case delta > 0:
		next = 0
	default:
		next = n - 1
	}
	m.highlighted = enabled[next].Key
	m.hasHighlight = true
}

// selectable reports whether the tab is listed in the menu and may be
// clicked.
func (m *overflowMenu) selectable(key Key) bool {
	i := indexOf(m.items, key)
	return i >= 0 && !m.items[i].Disabled
}
