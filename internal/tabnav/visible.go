package tabnav

// Range is an inclusive range of tab indices. An empty range has End < Start.
type Range struct {
	Start int
	End   int
}

var emptyRange = Range{Start: 0, End: -1}

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool { return r.End < r.Start }

// Contains reports whether i lies within the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i <= r.End }

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start + 1
}

// window is the portion of the content visible through the strip's viewport,
// in the same coordinates as the tabs' leading edges.
type window struct {
	start int
	size  int
}

func (w window) end() int { return w.start + w.size }

// intersects reports whether the interval [start, start+length] overlaps the
// window. A tab that is only partially visible still counts.
func (w window) intersects(start, length int) bool {
	if length == 0 {
		return start >= w.start && start <= w.end()
	}
	return start < w.end() && start+length > w.start
}

// VisibleRange determines the contiguous range of tabs visible through the
// window. Only tabs lying entirely outside the window are excluded; clipping
// a tab at the window edge does not hide it, otherwise the overflow count
// would flicker while scrolling.
func VisibleRange(offsets Offsets, axis Axis, rtl bool, w window) Range {
	r := emptyRange
	for i := range offsets.Len() {
		_, off := offsets.At(i)
		start, length := off.lead(axis, rtl)
		if !w.intersects(start, length) {
			if !r.Empty() {
				// Leading edges are monotonic so nothing further can be
				// visible.
				break
			}
			continue
		}
		if r.Empty() {
			r.Start = i
		}
		r.End = i
	}
	return r
}

// splitHidden partitions tabs into those inside and outside the range,
// preserving order.
func splitHidden(tabs []Tab, r Range) (visible, hidden []Tab) {
	for i, t := range tabs {
		if r.Contains(i) {
			visible = append(visible, t)
		} else {
			hidden = append(hidden, t)
		}
	}
	return visible, hidden
}
