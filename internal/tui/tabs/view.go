package tabs

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui"
)

type region struct {
	x, y, w, h int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// placed is a tab, or the add button following the tabs, positioned along the
// strip. Positions are relative to the strip.
type placed struct {
	tab  tabnav.Tab
	text string
	// pos is where the uncropped header starts along the strip's axis
	pos int
	// size along the axis
	size int
	// cells cut from either end by the edges of the viewport
	cutStart, cutEnd int
	active           bool
}

func (p placed) from() int { return p.pos + p.cutStart }
func (p placed) to() int   { return p.pos + p.size - p.cutEnd }

// stripView is the layout mapped onto terminal cells. It is shared by
// rendering and mouse hit testing so the two cannot disagree.
type stripView struct {
	layout     tabnav.Layout
	horizontal bool
	editable   bool
	extra      Extra

	// bounds of the strip within the model's area
	bounds region
	// length of the strip along its axis
	length int

	extraRightPos int
	// cells along the axis within which tabs are drawn
	clipLo, clipHi int

	tabs    []placed
	listAdd *placed
	// positions of the operations buttons along the axis, or -1
	morePos, opsAddPos int

	inkFrom, inkTo int

	dropdown *dropdown
}

func newStripView(l tabnav.Layout, s strip) stripView {
	v := stripView{
		layout:     l,
		horizontal: l.Position.Horizontal(),
		editable:   s.editable,
		extra:      s.extra,
		morePos:    -1,
		opsAddPos:  -1,
	}
	var extraLeft, buttonSize int
	if v.horizontal {
		extraLeft = s.extraSize(s.extra.Left).Width
		buttonSize = buttonWidth
		v.bounds = region{w: s.width, h: tabHeaderHeight}
		if l.Position == tabnav.Bottom {
			v.bounds.y = max(0, s.height-tabHeaderHeight)
		}
		v.length = s.width
	} else {
		extraLeft = s.extraSize(s.extra.Left).Height
		buttonSize = 1
		v.bounds = region{w: s.verticalWidth(), h: s.height}
		if l.Position == tabnav.Right {
			v.bounds.x = max(0, s.width-v.bounds.w)
		}
		v.length = s.height
	}

	var (
		container = l.ContainerSize
		capacity  = l.VisibleCapacity
		content   = l.ContentSize
		t         = l.Transform.Value
		rtl       = v.horizontal && l.RTL && !l.Centered
	)
	v.extraRightPos = extraLeft + container

	// start is the content coordinate shown at the viewport's leading
	// physical edge.
	var start int
	switch {
	case l.Centered:
		start = -t - (capacity-content)/2
	case rtl:
		start = content - t - capacity
	default:
		start = -t
	}
	// the viewport is flush against the trailing edge of a right-to-left
	// strip, leaving the operations buttons on its left.
	viewport := extraLeft
	if rtl {
		viewport = extraLeft + container - capacity
	}
	v.clipLo, v.clipHi = viewport, viewport+capacity
	if !l.Scrolling {
		v.clipLo, v.clipHi = extraLeft, extraLeft+container
	}
	toView := func(lead int) int { return viewport + lead - start }

	for _, p := range l.Placements {
		lead, size := p.Left, p.Width
		if !v.horizontal {
			lead, size = p.Top, p.Height
		}
		text := tabText(p.Tab, s.editable)
		if pl, ok := v.place(p.Tab, text, toView(lead), size); ok {
			pl.active = p.Key == l.ActiveKey
			v.tabs = append(v.tabs, pl)
		}
	}

	if l.ShowAdd && !l.AddInOperations {
		lead := content
		if v.horizontal && l.RTL {
			lead = -buttonSize
		}
		if pl, ok := v.place(tabnav.Tab{}, " "+addGlyph+" ", toView(lead), buttonSize); ok {
			v.listAdd = &pl
		}
	}

	if l.Scrolling && l.ShowMore {
		if rtl {
			v.morePos = viewport - buttonSize
			if l.AddInOperations {
				v.opsAddPos = v.morePos - buttonSize
			}
		} else {
			v.morePos = viewport + capacity
			if l.AddInOperations {
				v.opsAddPos = v.morePos + buttonSize
			}
		}
	}

	if ind := l.Indicator; ind.Valid {
		lead := ind.Offset
		if ind.Edge == tabnav.EdgeRight {
			lead = content - ind.Offset - ind.Length
		}
		v.inkFrom = max(v.clipLo, toView(lead))
		v.inkTo = min(v.clipHi, toView(lead)+ind.Length)
	}

	if l.OverflowOpen && len(l.Hidden) > 0 && v.morePos >= 0 {
		v.dropdown = newDropdown(l, v, s)
	}
	return v
}

// place crops a header to the drawable part of the strip. It returns false
// if nothing of the header remains.
func (v stripView) place(tab tabnav.Tab, text string, pos, size int) (placed, bool) {
	p := placed{tab: tab, text: text, pos: pos, size: size}
	p.cutStart = min(size, max(0, v.clipLo-pos))
	p.cutEnd = min(size, max(0, pos+size-v.clipHi))
	return p, p.from() < p.to()
}

var (
	activeTabStyle   = tui.Bold.Copy().Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Copy().Foreground(tui.InactiveTabColor)
	disabledTabStyle = tui.Faint.Copy().Foreground(tui.DisabledTabColor)
	buttonStyle      = tui.Bold.Copy().Foreground(tui.InactiveTabColor)
	openButtonStyle  = buttonStyle.Copy().
				Background(tui.HighlightBackground).
				Foreground(tui.HighlightForeground)
	baselineStyle = tui.Regular.Copy().Foreground(tui.BaselineColor)
	inkStyle      = tui.Bold.Copy().Foreground(tui.InkBarColor)
)

func (p placed) style() lipgloss.Style {
	switch {
	case p.tab.Disabled:
		return disabledTabStyle
	case p.active:
		return activeTabStyle
	default:
		return inactiveTabStyle
	}
}

// crop removes cells from either end of plain text. Wide runes straddling a
// cut are replaced by padding so the result is exactly the remaining width.
func crop(text string, start, end int) string {
	w := textWidth(text) - start - end
	if w <= 0 {
		return ""
	}
	s := runewidth.TruncateLeft(text, textWidth(text)-start, "")
	s = truncate.String(s, uint(w))
	return runewidth.FillRight(s, w)
}

type segment struct {
	pos      int
	width    int
	rendered string
}

// joinSegments lays segments out along a line of the given width, padding
// gaps with spaces. Segments overlapping an earlier segment are dropped.
func joinSegments(width int, segs []segment) string {
	slices.SortStableFunc(segs, func(a, b segment) int { return a.pos - b.pos })
	var (
		b      strings.Builder
		cursor int
	)
	for _, s := range segs {
		if s.width <= 0 || s.pos < cursor || s.pos+s.width > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", s.pos-cursor))
		b.WriteString(s.rendered)
		cursor = s.pos + s.width
	}
	b.WriteString(strings.Repeat(" ", max(0, width-cursor)))
	return b.String()
}

// renderGlyphs renders a line of single-cell glyphs, styling consecutive cells that
// share a style together.
type glyph struct {
	char  string
	style *lipgloss.Style
}

func renderGlyphs(cells []glyph) string {
	var (
		b   strings.Builder
		run strings.Builder
	)
	for i, c := range cells {
		run.WriteString(c.char)
		if i == len(cells)-1 || cells[i+1].style != c.style {
			b.WriteString(c.style.Render(run.String()))
			run.Reset()
		}
	}
	return b.String()
}

// baseline renders the line marking the edge of the strip, with the ink bar
// over the active tab and arrows at edges beyond which tabs are scrolled out
// of view.
func (v stripView) baseline(thin, thick string, leading, trailing bool, leadArrow, trailArrow string) []glyph {
	cells := make([]glyph, v.length)
	for i := range cells {
		cells[i] = glyph{char: thin, style: &baselineStyle}
	}
	for i := max(0, v.inkFrom); i < min(v.length, v.inkTo); i++ {
		cells[i] = glyph{char: thick, style: &inkStyle}
	}
	if v.layout.Scrolling {
		if leading && v.clipLo >= 0 && v.clipLo < v.length {
			cells[v.clipLo] = glyph{char: leadArrow, style: &baselineStyle}
		}
		if trailing && v.clipHi-1 >= 0 && v.clipHi-1 < v.length {
			cells[v.clipHi-1] = glyph{char: trailArrow, style: &baselineStyle}
		}
	}
	return cells
}

func (v stripView) buttons() (segs []segment) {
	more := buttonStyle
	if v.layout.OverflowOpen {
		more = openButtonStyle
	}
	if v.morePos >= 0 {
		segs = append(segs, segment{pos: v.morePos, width: buttonWidth, rendered: more.Render(" " + moreGlyph + " ")})
	}
	if v.opsAddPos >= 0 {
		segs = append(segs, segment{pos: v.opsAddPos, width: buttonWidth, rendered: buttonStyle.Render(" " + addGlyph + " ")})
	}
	return segs
}

func (v stripView) render() string {
	if v.bounds.w <= 0 || v.bounds.h <= 0 {
		return ""
	}
	if v.horizontal {
		return v.renderHorizontal()
	}
	return v.renderVertical()
}

func (v stripView) renderHorizontal() string {
	var segs []segment
	if v.extra.Left != "" {
		segs = append(segs, segment{pos: 0, width: tui.Width(v.extra.Left), rendered: v.extra.Left})
	}
	if v.extra.Right != "" {
		segs = append(segs, segment{pos: v.extraRightPos, width: tui.Width(v.extra.Right), rendered: v.extra.Right})
	}
	for _, p := range v.tabs {
		segs = append(segs, segment{
			pos:      p.from(),
			width:    p.to() - p.from(),
			rendered: p.style().Render(crop(p.text, p.cutStart, p.cutEnd)),
		})
	}
	if p := v.listAdd; p != nil {
		segs = append(segs, segment{
			pos:      p.from(),
			width:    p.to() - p.from(),
			rendered: buttonStyle.Render(crop(p.text, p.cutStart, p.cutEnd)),
		})
	}
	segs = append(segs, v.buttons()...)
	labels := joinSegments(v.length, segs)

	ping := v.layout.Ping
	underline := renderGlyphs(v.baseline("─", "━", ping.Left, ping.Right, "◂", "▸"))

	if v.layout.Position == tabnav.Bottom {
		return lipgloss.JoinVertical(lipgloss.Left, underline, labels)
	}
	return lipgloss.JoinVertical(lipgloss.Left, labels, underline)
}

func (v stripView) renderVertical() string {
	labelWidth := v.bounds.w - 1
	rows := make([]string, v.length)
	set := func(row int, rendered string) {
		if row >= 0 && row < len(rows) && rows[row] == "" {
			rows[row] = rendered
		}
	}
	fit := func(text string, style lipgloss.Style) string {
		text = truncate.StringWithTail(text, uint(labelWidth), "…")
		return style.Render(runewidth.FillRight(text, labelWidth))
	}

	if v.extra.Left != "" {
		set(0, truncate.String(v.extra.Left, uint(labelWidth)))
	}
	for _, p := range v.tabs {
		set(p.pos, fit(p.text, p.style()))
	}
	if p := v.listAdd; p != nil {
		set(p.pos, fit(p.text, buttonStyle))
	}
	for _, s := range v.buttons() {
		set(s.pos, s.rendered)
	}
	if v.extra.Right != "" {
		set(v.extraRightPos, truncate.String(v.extra.Right, uint(labelWidth)))
	}

	ping := v.layout.Ping
	markers := v.baseline("│", "┃", ping.Top, ping.Bottom, "▴", "▾")
	lines := make([]string, len(rows))
	for i, row := range rows {
		label := joinSegments(labelWidth, []segment{{width: min(labelWidth, tui.Width(row)), rendered: row}})
		marker := renderGlyphs(markers[i : i+1])
		if v.layout.Position == tabnav.Right {
			lines[i] = marker + label
		} else {
			lines[i] = label + marker
		}
	}
	return strings.Join(lines, "\n")
}
