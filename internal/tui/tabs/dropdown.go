package tabs

import (
	"strings"

	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui"
)

var (
	dropdownBorder = tui.RoundedBorders.Copy().BorderForeground(tui.LightGrey)
	highlightStyle = tui.Regular.Copy().
			Background(tui.HighlightBackground).
			Foreground(tui.HighlightForeground)
)

// dropdown lists the tabs that don't fit in the strip.
type dropdown struct {
	items    []tabnav.Tab
	editable bool
	// highlighted item, or -1
	highlighted int
	// box including its border, relative to the model's area
	box region
	// width of an item within the border
	inner int
}

func newDropdown(l tabnav.Layout, v stripView, s strip) *dropdown {
	d := &dropdown{
		items:       l.Hidden,
		editable:    s.editable,
		highlighted: -1,
	}
	for i, t := range d.items {
		d.inner = max(d.inner, textWidth(d.label(t))+2)
		if l.HasHighlight && t.Key == l.Highlighted {
			d.highlighted = i
		}
	}
	if v.horizontal {
		d.inner = min(d.inner, max(0, s.width-2))
	} else {
		d.inner = min(d.inner, max(0, s.width-v.bounds.w-2))
	}
	d.box.w = d.inner + 2
	d.box.h = len(d.items) + 2

	switch l.Position {
	case tabnav.Top, tabnav.Bottom:
		more := v.bounds.x + v.morePos
		if l.RTL && !l.Centered {
			d.box.x = more
		} else {
			// right-aligned with the more button
			d.box.x = more + buttonWidth - d.box.w
		}
		d.box.x = max(0, min(d.box.x, s.width-d.box.w))
		if l.Position == tabnav.Top {
			d.box.y = tabHeaderHeight
		} else {
			d.box.y = v.bounds.y - d.box.h
		}
	case tabnav.Left, tabnav.Right:
		d.box.y = max(0, min(v.bounds.y+v.morePos, s.height-d.box.h))
		if l.Position == tabnav.Left {
			d.box.x = v.bounds.w
		} else {
			d.box.x = v.bounds.x - d.box.w
		}
	}
	return d
}

func (d *dropdown) label(t tabnav.Tab) string {
	label := t.Label
	if label == "" {
		label = string(t.Key)
	}
	return " " + label + " "
}

// closeColumn is the column within an item of the remove button.
func (d *dropdown) closeColumn() int {
	return d.inner - 2
}

func (d *dropdown) render() string {
	rows := make([]string, len(d.items))
	for i, t := range d.items {
		text := truncate.StringWithTail(d.label(t), uint(max(0, d.inner-2)), "…")
		text = runewidth.FillRight(text, max(0, d.inner-2))
		if t.Removable(d.editable) {
			text += closeGlyph + " "
		} else {
			text += "  "
		}
		style := inactiveTabStyle
		switch {
		case i == d.highlighted:
			style = highlightStyle
		case t.Disabled:
			style = disabledTabStyle
		}
		rows[i] = style.Render(text)
	}
	return dropdownBorder.Render(strings.Join(rows, "\n"))
}

// item returns the item at the given cell, and whether the cell is the item's
// remove button.
func (d *dropdown) item(x, y int) (t tabnav.Tab, remove bool, ok bool) {
	row := y - d.box.y - 1
	col := x - d.box.x - 1
	if row < 0 || row >= len(d.items) || col < 0 || col >= d.inner {
		return tabnav.Tab{}, false, false
	}
	t = d.items[row]
	remove = t.Removable(d.editable) && col == d.closeColumn()
	return t, remove, true
}
