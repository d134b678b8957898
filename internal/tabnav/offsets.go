package tabnav

import "slices"

// Offset is the position of a tab along the strip, derived from the measured
// sizes of it and the tabs before it.
//
// For horizontal, left-to-right strips Left accumulates and Right is the
// distance from the tab's right edge to the end of the content. Right-to-left
// strips lay tab 0 flush against the right edge, so Right accumulates and Left
// is derived. Vertical strips accumulate Top.
type Offset struct {
	Left   int
	Right  int
	Top    int
	Width  int
	Height int
}

// lead returns the coordinate at which the tab starts in the reading
// direction, and its extent along the axis.
func (o Offset) lead(a Axis, rtl bool) (start, length int) {
	switch {
	case a == Vertical:
		return o.Top, o.Height
	case rtl:
		return o.Right, o.Width
	default:
		return o.Left, o.Width
	}
}

// Offsets is an ordered, keyed collection of tab offsets.
type Offsets struct {
	keys    []Key
	offsets []Offset
	index   map[Key]int
	// total size of the content along the axis
	total int
}

// Len returns the number of tabs.
func (o Offsets) Len() int { return len(o.keys) }

// Total is the size of all tabs along the axis.
func (o Offsets) Total() int { return o.total }

// At returns the key and offset of the i'th tab.
func (o Offsets) At(i int) (Key, Offset) {
	return o.keys[i], o.offsets[i]
}

// Get returns the offset for the tab with the given key.
func (o Offsets) Get(key Key) (Offset, bool) {
	i, ok := o.index[key]
	if !ok {
		return Offset{}, false
	}
	return o.offsets[i], true
}

// CalculateOffsets lays tabs end to end along the axis in the order given.
// Tabs missing from sizes have not been measured yet; they take up no space.
func CalculateOffsets(tabs []Tab, sizes map[Key]Size, axis Axis, rtl bool) Offsets {
	out := Offsets{
		keys:    make([]Key, len(tabs)),
		offsets: make([]Offset, len(tabs)),
		index:   make(map[Key]int, len(tabs)),
	}
	var cursor int
	for i, t := range tabs {
		size := sizes[t.Key]
		off := Offset{Width: size.Width, Height: size.Height}
		switch {
		case axis == Vertical:
			off.Top = cursor
		case rtl:
			off.Right = cursor
		default:
			off.Left = cursor
		}
		cursor += size.along(axis)

		out.keys[i] = t.Key
		out.offsets[i] = off
		out.index[t.Key] = i
	}
	out.total = cursor

	if axis == Horizontal {
		for i := range out.offsets {
			off := &out.offsets[i]
			if rtl {
				off.Left = out.total - off.Right - off.Width
			} else {
				off.Right = out.total - off.Left - off.Width
			}
		}
	}
	return out
}

// offsetCache memoizes CalculateOffsets on the ordered keys, their sizes and
// the layout flags.
type offsetCache struct {
	keys  []Key
	sizes []Size
	axis  Axis
	rtl   bool
	valid bool

	offsets Offsets
}

func (c *offsetCache) get(tabs []Tab, sizes map[Key]Size, axis Axis, rtl bool) (Offsets, bool) {
	keys := keysOf(tabs)
	sigs := make([]Size, len(keys))
	for i, k := range keys {
		sigs[i] = sizes[k]
	}
	if c.valid && c.axis == axis && c.rtl == rtl &&
		slices.Equal(c.keys, keys) && slices.Equal(c.sizes, sigs) {
		return c.offsets, false
	}
	c.keys = keys
	c.sizes = sigs
	c.axis = axis
	c.rtl = rtl
	c.valid = true
	c.offsets = CalculateOffsets(tabs, sizes, axis, rtl)
	return c.offsets, true
}
