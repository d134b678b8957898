package tabnav

// Transform is the translation applied to the tab list along the strip's
// axis. Positive values move the list right (or down).
type Transform struct {
	Axis  Axis
	Value int
}

// ScrollDirection is reported to OnScroll whenever the active transform
// changes.
type ScrollDirection string

const (
	ScrollLeft   ScrollDirection = "left"
	ScrollRight  ScrollDirection = "right"
	ScrollTop    ScrollDirection = "top"
	ScrollBottom ScrollDirection = "bottom"
)

// Bounds is the closed interval of valid transform values.
type Bounds struct {
	Min int
	Max int
}

// Clamp projects v into the bounds.
func (b Bounds) Clamp(v int) int {
	return clamp(v, b.Min, b.Max)
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

// geometry captures everything the transform maths depends on.
type geometry struct {
	axis     Axis
	rtl      bool
	centered bool
	// visible is the capacity available to tabs
	visible int
	// content is the total size of all tabs
	content int
}

// rtlLead reports whether tabs are positioned by their Right offset.
// Centering takes precedence over the reading direction.
func (g geometry) rtlLead() bool {
	return g.axis == Horizontal && g.rtl && !g.centered
}

// centerShift is where the content starts, relative to the viewport, when
// centered and untransformed.
func (g geometry) centerShift() int {
	return (g.visible - g.content) / 2
}

// Bounds returns the range of valid transforms.
func (g geometry) Bounds() Bounds {
	switch {
	case g.centered:
		half := abs(g.visible-g.content) / 2
		return Bounds{Min: -half, Max: half}
	case g.content <= g.visible:
		return Bounds{}
	case g.rtlLead():
		return Bounds{Min: 0, Max: max(0, g.content-g.visible)}
	default:
		return Bounds{Min: min(0, g.visible-g.content), Max: 0}
	}
}

// window returns the part of the content visible with transform t, in the
// coordinates of the tabs' leading edges.
func (g geometry) window(t int) window {
	w := window{size: g.visible}
	switch {
	case g.centered:
		w.start = -t - g.centerShift()
	case g.rtlLead():
		w.start = t
	default:
		w.start = -t
	}
	return w
}

// transformFor is the inverse of window: the transform at which the window
// starts at the given coordinate.
func (g geometry) transformFor(start int) int {
	switch {
	case g.centered:
		return -start - g.centerShift()
	case g.rtlLead():
		return start
	default:
		return -start
	}
}

// scrollIntoView returns the transform, nearest to current, at which the
// tab's extent lies within the window. If the tab is already fully visible
// current is returned unchanged (after clamping).
func (g geometry) scrollIntoView(off Offset, current int) int {
	start, length := off.lead(g.axis, g.rtlLead())
	w := g.window(current)
	ws := w.start
	if start < w.start {
		ws = start
	} else if start+length > w.end() {
		ws = start + length - w.size
	}
	return g.Bounds().Clamp(g.transformFor(ws))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// transforms holds one transform per axis. Only the axis matching the
// current position is in use; the other stays at zero.
type transforms struct {
	primary   int
	secondary int
	axis      Axis

	onScroll func(ScrollDirection)
}

func (t *transforms) value() int {
	if t.axis == Vertical {
		return t.secondary
	}
	return t.primary
}

// set updates the transform for an axis, reporting the direction of travel
// when the axis in use changes value.
func (t *transforms) set(axis Axis, v int) {
	ptr := &t.primary
	if axis == Vertical {
		ptr = &t.secondary
	}
	prev := *ptr
	*ptr = v
	if prev == v || axis != t.axis || t.onScroll == nil {
		return
	}
	switch {
	case axis == Horizontal && v > prev:
		t.onScroll(ScrollLeft)
	case axis == Horizontal:
		t.onScroll(ScrollRight)
	case v > prev:
		t.onScroll(ScrollTop)
	default:
		t.onScroll(ScrollBottom)
	}
}

// setActive updates the transform of the axis in use and zeroes the other.
func (t *transforms) setActive(v int) {
	other := Vertical
	if t.axis == Vertical {
		other = Horizontal
	}
	t.set(other, 0)
	t.set(t.axis, v)
}

// reorient switches the axis in use, discarding both transforms so that
// offsets from one axis never bleed into the other.
func (t *transforms) reorient(axis Axis) {
	if t.axis == axis {
		return
	}
	t.axis = axis
	t.primary = 0
	t.secondary = 0
}
