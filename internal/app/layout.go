package app

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hokaccha/go-prettyjson"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui/tabs"
	"github.com/leg100/tabstrip/internal/tui/top"
	"github.com/muesli/termenv"
)

// crossSize is the size of the area across the strip's axis when printing a
// layout.
const crossSize = 24

// printedLayout is the subset of a layout worth printing.
type printedLayout struct {
	Position        string             `json:"position"`
	RTL             bool               `json:"rtl"`
	Centered        bool               `json:"centered"`
	Active          tabnav.Key         `json:"active"`
	Visible         []tabnav.Key       `json:"visible"`
	Hidden          []tabnav.Key       `json:"hidden"`
	Placements      []printedPlacement `json:"placements"`
	Transform       int                `json:"transform"`
	Bounds          [2]int             `json:"bounds"`
	Indicator       *printedIndicator  `json:"indicator"`
	Scrolling       bool               `json:"scrolling"`
	ShowMore        bool               `json:"show_more"`
	ShowAdd         bool               `json:"show_add"`
	ContainerSize   int                `json:"container_size"`
	ContentSize     int                `json:"content_size"`
	VisibleCapacity int                `json:"visible_capacity"`
}

type printedPlacement struct {
	Key    tabnav.Key `json:"key"`
	Lead   int        `json:"lead"`
	Length int        `json:"length"`
}

type printedIndicator struct {
	Edge   tabnav.Edge `json:"edge"`
	Offset int         `json:"offset"`
	Length int         `json:"length"`
}

func newPrintedLayout(l tabnav.Layout) printedLayout {
	out := printedLayout{
		Position:        l.Position.String(),
		RTL:             l.RTL,
		Centered:        l.Centered,
		Active:          l.ActiveKey,
		Visible:         make([]tabnav.Key, len(l.Visible)),
		Hidden:          make([]tabnav.Key, len(l.Hidden)),
		Placements:      make([]printedPlacement, len(l.Placements)),
		Transform:       l.Transform.Value,
		Bounds:          [2]int{l.Bounds.Min, l.Bounds.Max},
		Scrolling:       l.Scrolling,
		ShowMore:        l.ShowMore,
		ShowAdd:         l.ShowAdd,
		ContainerSize:   l.ContainerSize,
		ContentSize:     l.ContentSize,
		VisibleCapacity: l.VisibleCapacity,
	}
	for i, t := range l.Visible {
		out.Visible[i] = t.Key
	}
	for i, t := range l.Hidden {
		out.Hidden[i] = t.Key
	}
	for i, p := range l.Placements {
		pp := printedPlacement{Key: p.Key, Lead: p.Left, Length: p.Width}
		switch {
		case !l.Position.Horizontal():
			pp.Lead, pp.Length = p.Top, p.Height
		case l.RTL:
			pp.Lead = p.Right
		}
		out.Placements[i] = pp
	}
	if l.Indicator.Valid {
		out.Indicator = &printedIndicator{
			Edge:   l.Indicator.Edge,
			Offset: l.Indicator.Offset,
			Length: l.Indicator.Length,
		}
	}
	return out
}

// printLayout lays out the tabs in a strip of the given size, without a
// terminal, and prints the result as JSON. The output is colourised if w is
// a terminal that supports colour.
func printLayout(w io.Writer, opts top.Options, size int) error {
	position, _ := tabnav.ParsePosition(opts.Position)
	list := make([]tabnav.Tab, len(opts.Tabs))
	for i, t := range opts.Tabs {
		list[i] = t.Tab
	}
	var logger logging.Interface = logging.Discard
	if opts.Logger != nil {
		logger = opts.Logger
	}
	m := tabs.New(tabs.Options{
		Tabs:             list,
		Position:         position,
		RTL:              opts.RTL,
		Centered:         opts.Centered,
		Editable:         opts.Editable,
		HideAdd:          opts.HideAdd,
		DefaultActiveKey: opts.DefaultActiveKey,
		Logger:           logger,
	})
	defer m.Close()

	width, height := size, crossSize
	if !position.Horizontal() {
		width, height = crossSize*4, size
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	// The indicator is positioned a frame after the layout settles.
	m, _ = m.Update(tabs.FrameMsg(time.Now()))

	f := prettyjson.NewFormatter()
	f.DisabledColor = termenv.NewOutput(w).ColorProfile() == termenv.Ascii
	b, err := f.Marshal(newPrintedLayout(m.Layout()))
	if err != nil {
		return fmt.Errorf("marshaling layout: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
