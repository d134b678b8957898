package tabnav

// Edge is the side of the strip from which the indicator is positioned.
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
	EdgeTop   Edge = "top"
)

// Indicator is the position of the bar marking the active tab.
type Indicator struct {
	Edge Edge
	// Offset from Edge
	Offset int
	// Length along the strip's axis
	Length int
	// Valid is false when there is no active tab to mark.
	Valid bool
}

func indicatorFor(off Offset, ok bool, axis Axis, rtl bool) Indicator {
	if !ok {
		return Indicator{}
	}
	switch {
	case axis == Vertical:
		return Indicator{Edge: EdgeTop, Offset: off.Top, Length: off.Height, Valid: true}
	case rtl:
		return Indicator{Edge: EdgeRight, Offset: off.Right, Length: off.Width, Valid: true}
	default:
		return Indicator{Edge: EdgeLeft, Offset: off.Left, Length: off.Width, Valid: true}
	}
}

// indicatorPositioner applies indicator changes one frame after they're
// requested. If the active tab is being removed, applying immediately would
// render the indicator at the stale offset of the removed tab in the same
// paint.
type indicatorPositioner struct {
	sched Scheduler

	current Indicator
	// target is the most recently requested indicator
	target  Indicator
	pending Handle
}

// update requests the indicator move to next, replacing any request that
// has not yet been applied.
func (p *indicatorPositioner) update(next Indicator, applied func()) {
	if p.pending == 0 && next == p.current {
		return
	}
	if p.pending != 0 && next == p.target {
		return
	}
	p.cancel()
	p.target = next
	p.pending = p.sched.RequestFrame(func() {
		p.pending = 0
		p.current = next
		if applied != nil {
			applied()
		}
	})
}

func (p *indicatorPositioner) cancel() {
	if p.pending != 0 {
		p.sched.Cancel(p.pending)
		p.pending = 0
	}
}
