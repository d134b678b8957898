package tabs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/tabnav"
)

type hitKind int

const (
	hitNone hitKind = iota
	// the strip, but none of its buttons or tabs
	hitStrip
	hitTab
	hitRemove
	hitAdd
	hitMore
	// the dropdown, but none of its items
	hitMenu
	hitMenuItem
	hitMenuRemove
)

type hit struct {
	kind hitKind
	key  tabnav.Key
}

// hit determines what lies under a cell within the model's area.
func (v stripView) hit(x, y int) hit {
	if d := v.dropdown; d != nil && d.box.contains(x, y) {
		t, remove, ok := d.item(x, y)
		switch {
		case !ok:
			return hit{kind: hitMenu}
		case remove:
			return hit{kind: hitMenuRemove, key: t.Key}
		default:
			return hit{kind: hitMenuItem, key: t.Key}
		}
	}
	if !v.bounds.contains(x, y) {
		return hit{kind: hitNone}
	}
	along := x - v.bounds.x
	if !v.horizontal {
		along = y - v.bounds.y
	}
	within := func(pos, size int) bool { return along >= pos && along < pos+size }

	for _, p := range v.tabs {
		if along < p.from() || along >= p.to() {
			continue
		}
		if p.tab.Removable(v.editable) && v.onClose(p, x) {
			return hit{kind: hitRemove, key: p.tab.Key}
		}
		return hit{kind: hitTab, key: p.tab.Key}
	}
	if p := v.listAdd; p != nil && along >= p.from() && along < p.to() {
		return hit{kind: hitAdd}
	}
	size := buttonWidth
	if !v.horizontal {
		size = 1
	}
	if v.morePos >= 0 && within(v.morePos, size) {
		return hit{kind: hitMore}
	}
	if v.opsAddPos >= 0 && within(v.opsAddPos, size) {
		return hit{kind: hitAdd}
	}
	return hit{kind: hitStrip}
}

// onClose reports whether the column x is over the close button of a tab.
func (v stripView) onClose(p placed, x int) bool {
	col := textWidth(p.text) - 2
	if v.horizontal {
		return x-v.bounds.x == p.pos+col
	}
	labelWidth := v.bounds.w - 1
	if textWidth(p.text) > labelWidth {
		// truncated, and the button with it
		return false
	}
	start := v.bounds.x
	if v.layout.Position == tabnav.Right {
		start++
	}
	return x-start == col
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	v := m.view()
	switch {
	case tea.MouseEvent(msg).IsWheel():
		if v.bounds.contains(msg.X, msg.Y) {
			switch msg.Button {
			case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
				m.scroll(false, wheelScrollStep)
			case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
				m.scroll(true, wheelScrollStep)
			}
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(v, msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.nav.Drag(msg.X-m.lastX, msg.Y-m.lastY)
		m.lastX, m.lastY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
}

func (m *Model) press(v stripView, x, y int) {
	h := v.hit(x, y)
	if v.layout.OverflowOpen {
		switch h.kind {
		case hitMenu, hitMenuItem, hitMenuRemove, hitMore:
		default:
			m.nav.MenuSetOpen(false)
		}
	}
	switch h.kind {
	case hitTab:
		m.nav.Click(h.key)
	case hitRemove, hitMenuRemove:
		m.nav.Remove(h.key)
	case hitAdd:
		m.nav.Add()
	case hitMore:
		m.nav.MenuToggle()
	case hitMenuItem:
		m.nav.MenuSelect(h.key)
	}
	// Pressing anywhere on the strip other than a button may start a drag.
	if h.kind == hitStrip || h.kind == hitTab {
		m.dragging = true
		m.lastX, m.lastY = x, y
	}
}
