package tabnav

import "strings"

// Key uniquely identifies a tab within a tab list.
type Key string

// Tab is one entry in the authoritative, ordered tab list supplied by the
// host. The engine never mutates tabs; it only derives presentation state
// from them.
type Tab struct {
	Key      Key
	Label    string
	Disabled bool
	// Closable permits removal of the tab when the strip is editable.
	Closable bool
}

// Removable reports whether a remove action may be offered for the tab.
func (t Tab) Removable(editable bool) bool {
	return editable && t.Closable && !t.Disabled
}

// sanitizeTabs drops tabs without a key and tabs whose key has already been
// seen earlier in the list.
func sanitizeTabs(tabs []Tab) []Tab {
	seen := make(map[Key]struct{}, len(tabs))
	out := make([]Tab, 0, len(tabs))
	for _, t := range tabs {
		if t.Key == "" {
			continue
		}
		if _, ok := seen[t.Key]; ok {
			continue
		}
		seen[t.Key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func indexOf(tabs []Tab, key Key) int {
	for i, t := range tabs {
		if t.Key == key {
			return i
		}
	}
	return -1
}

func keysOf(tabs []Tab) []Key {
	keys := make([]Key, len(tabs))
	for i, t := range tabs {
		keys[i] = t.Key
	}
	return keys
}

// Position is the side of the content on which the tab strip is placed.
type Position int

const (
	Top Position = iota
	Bottom
	Left
	Right
)

var positionNames = map[Position]string{
	Top:    "top",
	Bottom: "bottom",
	Left:   "left",
	Right:  "right",
}

func (p Position) String() string {
	if s, ok := positionNames[p]; ok {
		return s
	}
	return "top"
}

// Horizontal reports whether tabs are laid out along the horizontal axis,
// i.e. the strip is above or below the content.
func (p Position) Horizontal() bool {
	return p == Top || p == Bottom
}

// Axis returns the axis along which tabs are laid out.
func (p Position) Axis() Axis {
	if p.Horizontal() {
		return Horizontal
	}
	return Vertical
}

// PositionNames lists valid position names, default first.
func PositionNames() []string {
	return []string{"top", "bottom", "left", "right"}
}

// ParsePosition parses a position name. An unrecognised name yields Top and
// false; the caller decides whether to advise the developer.
func ParsePosition(s string) (Position, bool) {
	for p, name := range positionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return p, true
		}
	}
	return Top, false
}

// Axis is the direction along which the strip scrolls.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Size is the rendered footprint of a node.
type Size struct {
	Width  int
	Height int
}

// along returns the size along the axis.
func (s Size) along(a Axis) int {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}
