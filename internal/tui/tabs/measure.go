package tabs

import (
	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui"
)

const (
	// label row plus the underline
	tabHeaderHeight = 2
	buttonWidth     = 3
	maxLabelWidth   = 24

	minVerticalWidth = 8
	maxVerticalWidth = 28

	closeGlyph = "×"
	moreGlyph  = "⋯"
	addGlyph   = "+"
)

// tabText is the text of a tab header: its label with a cell of padding
// either side, followed by a close button if it can be removed.
func tabText(t tabnav.Tab, editable bool) string {
	label := t.Label
	if label == "" {
		label = string(t.Key)
	}
	text := " " + truncate.StringWithTail(label, maxLabelWidth, "…") + " "
	if t.Removable(editable) {
		text += closeGlyph + " "
	}
	return text
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// strip describes the inputs that determine the size of every part of the
// strip.
type strip struct {
	tabs     []tabnav.Tab
	position tabnav.Position
	editable bool
	showAdd  bool
	extra    Extra
	// size of the area the strip is placed within
	width, height int
}

// verticalWidth is the width of a strip placed to the left or right of the
// content: wide enough for the widest tab plus the indicator column, within
// limits.
func (s strip) verticalWidth() int {
	var w int
	for _, t := range s.tabs {
		w = max(w, textWidth(tabText(t, s.editable)))
	}
	w++
	upper := max(minVerticalWidth, min(maxVerticalWidth, s.width/2))
	return min(upper, max(minVerticalWidth, w))
}

func (s strip) extraSize(rendered string) tabnav.Size {
	if rendered == "" {
		return tabnav.Size{}
	}
	return tabnav.Size{Width: tui.Width(rendered), Height: 1}
}

func (s strip) tabSize(t tabnav.Tab) tabnav.Size {
	return tabnav.Size{Width: textWidth(tabText(t, s.editable)), Height: 1}
}

// sizes measures every observable part of the strip.
func (s strip) sizes() map[tabnav.Node]tabnav.Size {
	ops := tabnav.Size{Width: buttonWidth, Height: 1}
	container := tabnav.Size{Width: s.width, Height: tabHeaderHeight}
	if s.position.Horizontal() {
		if s.showAdd {
			ops.Width += buttonWidth
		}
	} else {
		container = tabnav.Size{Width: s.verticalWidth(), Height: s.height}
		if s.showAdd {
			ops.Height++
		}
	}
	sizes := map[tabnav.Node]tabnav.Size{
		{Kind: tabnav.ContainerNode}:  container,
		{Kind: tabnav.ExtraLeftNode}:  s.extraSize(s.extra.Left),
		{Kind: tabnav.ExtraRightNode}: s.extraSize(s.extra.Right),
		{Kind: tabnav.AddButtonNode}:  {Width: buttonWidth, Height: 1},
		{Kind: tabnav.OperationsNode}: ops,
	}
	for _, t := range s.tabs {
		sizes[tabnav.TabNode(t.Key)] = s.tabSize(t)
	}
	return sizes
}
