// Package tabnav is the layout engine behind a tab strip. It measures tabs,
// decides which of them fit in the strip and which overflow into a dropdown,
// keeps the strip scrolled so the active tab is in view, and positions the
// active-tab indicator.
//
// The engine is renderer-agnostic. Sizes arrive through a Source, deferred
// work runs on a Scheduler, and the result is published as a Layout for a
// rendering layer to draw. All methods must be called from the goroutine
// running the event loop.
package tabnav

import (
	"reflect"
	"time"

	"github.com/leg100/tabstrip/internal/logging"
)

// dragLockDuration is how long after the last drag event the strip resumes
// animating transform changes.
const dragLockDuration = 100 * time.Millisecond

// EditAction is the kind of edit requested of the host.
type EditAction string

const (
	EditAdd    EditAction = "add"
	EditRemove EditAction = "remove"
)

// Options configure a Nav.
type Options struct {
	Tabs      []Tab
	Source    Source
	Scheduler Scheduler
	Logger    logging.Interface

	Position Position
	RTL      bool
	Centered bool
	// Editable enables the add button and remove buttons on closable tabs.
	Editable bool
	HideAdd  bool

	// ActiveKey, if non-nil, puts the active key under the host's control:
	// user activation is reported via OnChange but only takes effect once the
	// host calls SetActiveKey.
	ActiveKey        *Key
	DefaultActiveKey Key

	// OnChange is called when the user activates a tab other than the active
	// tab. It is never called when the active tab changes programmatically.
	OnChange func(Key)
	// OnTabClick is called whenever the user clicks an enabled tab.
	OnTabClick func(Key)
	OnEdit     func(EditAction, Key)
	OnScroll   func(ScrollDirection)
	// OnLayout is called whenever the published layout changes.
	OnLayout func(Layout)
}

// Ping indicates which edges of the strip have tabs scrolled out of view
// beyond them.
type Ping struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// Placement is a visible tab along with its offset.
type Placement struct {
	Tab
	Offset
	Index int
}

// Layout is the state of the strip for the rendering layer to draw.
type Layout struct {
	Position Position
	RTL      bool
	Centered bool

	ActiveKey Key
	Visible   []Tab
	Hidden    []Tab
	Range     Range
	// Placements of the visible tabs, in order.
	Placements []Placement

	Transform Transform
	Bounds    Bounds
	Indicator Indicator
	Ping      Ping
	// Locked is true while the user is dragging the strip; transform changes
	// should not be animated.
	Locked bool

	// Scrolling is true when the tabs and add button don't all fit, and
	// space is reserved for the operations buttons.
	Scrolling bool

	OverflowOpen bool
	Highlighted  Key
	HasHighlight bool
	ShowMore     bool
	ShowAdd      bool
	// AddInOperations is true when the add button is rendered alongside the
	// more button rather than after the last tab.
	AddInOperations bool

	ContainerSize   int
	ContentSize     int
	VisibleCapacity int
}

// Nav orchestrates the tab strip layout.
type Nav struct {
	logger  logging.Interface
	sched   Scheduler
	reg     *registry
	options Options

	tabs     []Tab
	position Position
	rtl      bool
	centered bool
	editable bool
	hideAdd  bool

	controlled  bool
	activeKey   Key
	activeIndex int

	cache      offsetCache
	offsets    Offsets
	geom       geometry
	container  int
	needScroll bool
	rng        Range
	transform  transforms
	menu       overflowMenu
	indicator  indicatorPositioner

	// batch is bumped on every measurement; a deferred flush only
	// recomputes if no newer measurement has arrived since.
	batch       uint64
	batchHandle Handle

	locked    bool
	lockTimer Handle

	layout Layout
	closed bool
}

// New constructs a Nav and computes its initial layout.
func New(opts Options) *Nav {
	n := &Nav{
		options:  opts,
		logger:   opts.Logger,
		sched:    opts.Scheduler,
		rtl:      opts.RTL,
		centered: opts.Centered,
		editable: opts.Editable,
		hideAdd:  opts.HideAdd,
		rng:      emptyRange,
	}
	if n.logger == nil {
		n.logger = logging.Discard
	}
	if n.sched == nil {
		n.sched = immediate{}
	}
	n.position = n.validPosition(opts.Position)
	n.transform = transforms{axis: n.position.Axis(), onScroll: opts.OnScroll}
	n.indicator = indicatorPositioner{sched: n.sched}
	n.reg = newRegistry(opts.Source, n.measured)
	for _, kind := range []NodeKind{ContainerNode, ExtraLeftNode, ExtraRightNode, AddButtonNode, OperationsNode} {
		n.reg.observe(Node{Kind: kind})
	}

	if opts.ActiveKey != nil {
		n.controlled = true
		n.activeKey = *opts.ActiveKey
	} else {
		n.activeKey = opts.DefaultActiveKey
	}
	n.setTabs(opts.Tabs)
	return n
}

func (n *Nav) validPosition(p Position) Position {
	_, ok := positionNames[p]
	n.advise(ok, "unknown tab position %d, falling back to %s", int(p), Top)
	if !ok {
		return Top
	}
	return p
}

// SetTabs replaces the tab list. Tabs without a key, or with a key already
// used by an earlier tab, are dropped.
func (n *Nav) SetTabs(tabs []Tab) {
	if n.closed {
		return
	}
	n.setTabs(tabs)
}

func (n *Nav) setTabs(tabs []Tab) {
	next := sanitizeTabs(tabs)
	for _, t := range n.tabs {
		if indexOf(next, t.Key) < 0 {
			n.reg.release(TabNode(t.Key))
		}
	}
	n.tabs = next
	for _, t := range n.tabs {
		n.reg.observe(TabNode(t.Key))
	}
	n.syncActive()
	n.recompute()
}

// syncActive ensures the active key refers to an existing tab. If the active
// tab has gone, the tab now at its former index becomes active, or the last
// tab if the list has shrunk below that index. The host is not notified.
func (n *Nav) syncActive() {
	if len(n.tabs) == 0 {
		n.activeIndex = 0
		return
	}
	i := indexOf(n.tabs, n.activeKey)
	if i < 0 {
		if n.activeKey == "" {
			i = 0
		} else {
			i = clamp(n.activeIndex, 0, len(n.tabs)-1)
		}
		n.activeKey = n.tabs[i].Key
	}
	n.activeIndex = i
}

// SetActiveKey programmatically activates a tab. It does not trigger
// OnChange. Unknown keys are ignored.
func (n *Nav) SetActiveKey(key Key) {
	if n.closed {
		return
	}
	i := indexOf(n.tabs, key)
	if i < 0 {
		n.logger.Debug("ignoring activation of unknown tab", "key", key)
		return
	}
	if key == n.activeKey {
		return
	}
	n.activeKey = key
	n.activeIndex = i
	n.recompute()
}

// SetPosition moves the strip to another side of the content. Switching
// between horizontal and vertical placement discards the scroll transform.
func (n *Nav) SetPosition(p Position) {
	if n.closed {
		return
	}
	p = n.validPosition(p)
	if p == n.position {
		return
	}
	n.position = p
	n.transform.reorient(p.Axis())
	n.recompute()
}

// SetPositionName is SetPosition for a position name. An unrecognised name
// falls back to the top position.
func (n *Nav) SetPositionName(name string) {
	p, ok := ParsePosition(name)
	n.advise(ok, "unknown tab position %q, falling back to %s", name, p)
	n.SetPosition(p)
}

// SetRTL switches between left-to-right and right-to-left reading order.
func (n *Nav) SetRTL(rtl bool) {
	if n.closed || rtl == n.rtl {
		return
	}
	n.rtl = rtl
	n.recompute()
}

// SetCentered toggles centering of the tabs within the strip.
func (n *Nav) SetCentered(centered bool) {
	if n.closed || centered == n.centered {
		return
	}
	n.centered = centered
	n.recompute()
}

// SetEditable toggles the add and remove buttons.
func (n *Nav) SetEditable(editable bool) {
	if n.closed || editable == n.editable {
		return
	}
	n.editable = editable
	n.recompute()
}

// Tabs returns the sanitized tab list.
func (n *Nav) Tabs() []Tab { return n.tabs }

// ActiveKey returns the key of the active tab, or an empty key if there are
// no tabs.
func (n *Nav) ActiveKey() Key {
	if len(n.tabs) == 0 {
		return ""
	}
	return n.activeKey
}

// Layout returns the most recently published layout.
func (n *Nav) Layout() Layout { return n.layout }

// Editable reports whether edit actions are enabled.
func (n *Nav) Editable() bool { return n.editable }

func (n *Nav) showAdd() bool {
	return n.editable && !n.hideAdd
}

// Click handles the user clicking a tab.
func (n *Nav) Click(key Key) {
	if n.closed {
		return
	}
	i := indexOf(n.tabs, key)
	if i < 0 || n.tabs[i].Disabled {
		return
	}
	if n.options.OnTabClick != nil {
		n.options.OnTabClick(key)
	}
	changed := key != n.activeKey
	if !n.controlled {
		n.activeKey = key
		n.activeIndex = i
	}
	if changed && n.options.OnChange != nil {
		n.options.OnChange(key)
	}
	n.recompute()
}

// Activate activates the enabled tab delta places from the active tab,
// wrapping around either end, as if the user had clicked it.
func (n *Nav) Activate(delta int) {
	total := len(n.tabs)
	if n.closed || total == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	i := n.activeIndex
	for remaining := abs(delta); remaining > 0; {
		found := false
		for range total {
			i = ((i+step)%total + total) % total
			if !n.tabs[i].Disabled {
				found = true
				break
			}
		}
		if !found {
			return
		}
		remaining--
	}
	n.Click(n.tabs[i].Key)
}

// Focus scrolls the strip so that the tab is fully in view.
func (n *Nav) Focus(key Key) {
	if n.closed {
		return
	}
	off, ok := n.offsets.Get(key)
	if !ok {
		return
	}
	n.transform.setActive(n.geom.scrollIntoView(off, n.transform.value()))
	n.refresh()
}

// ScrollIntoView is Focus without a focus change; it returns the resulting
// transform.
func (n *Nav) ScrollIntoView(key Key) int {
	n.Focus(key)
	return n.transform.value()
}

// Clamp projects a transform into the current bounds.
func (n *Nav) Clamp(v int) int {
	return n.geom.Bounds().Clamp(v)
}

// Drag scrolls the strip by a pointer or wheel delta. Only the delta along
// the strip's axis is used. It returns false if the strip has room for every
// tab and there is nothing to scroll.
func (n *Nav) Drag(dx, dy int) bool {
	if n.closed || n.container >= n.offsets.Total() {
		return false
	}
	delta := dx
	if n.position.Axis() == Vertical {
		delta = dy
	}
	n.transform.set(n.transform.axis, n.Clamp(n.transform.value()+delta))
	n.lock()
	n.refresh()
	return true
}

// lock suppresses transform animation until the user stops dragging.
func (n *Nav) lock() {
	if n.lockTimer != 0 {
		n.sched.Cancel(n.lockTimer)
	}
	n.locked = true
	n.lockTimer = n.sched.After(dragLockDuration, func() {
		n.lockTimer = 0
		n.locked = false
		n.publish()
	})
}

// MenuToggle opens the overflow menu if closed, or closes it if open.
func (n *Nav) MenuToggle() {
	if n.closed {
		return
	}
	n.menu.setOpen(!n.menu.open)
	n.publish()
}

// MenuSetOpen opens or closes the overflow menu.
func (n *Nav) MenuSetOpen(open bool) {
	if n.closed {
		return
	}
	n.menu.setOpen(open)
	n.publish()
}

// MenuKey routes a key press to the overflow menu.
func (n *Nav) MenuKey(k MenuKey) {
	if n.closed {
		return
	}
	key, selected := n.menu.handleKey(k)
	if selected {
		n.Click(key)
	}
	n.publish()
}

// MenuSelect handles the user clicking a tab listed in the overflow menu.
func (n *Nav) MenuSelect(key Key) {
	if n.closed || !n.menu.selectable(key) {
		return
	}
	n.menu.close()
	n.Click(key)
	n.publish()
}

// Remove asks the host to remove the tab, if the strip is editable and the
// tab can be closed. It never activates the tab.
func (n *Nav) Remove(key Key) {
	if n.closed {
		return
	}
	i := indexOf(n.tabs, key)
	if i < 0 || !n.tabs[i].Removable(n.editable) {
		return
	}
	if n.options.OnEdit != nil {
		n.options.OnEdit(EditRemove, key)
	}
}

// Add asks the host to add a tab, if the add button is shown.
func (n *Nav) Add() {
	if n.closed || !n.showAdd() {
		return
	}
	if n.options.OnEdit != nil {
		n.options.OnEdit(EditAdd, "")
	}
}

// measured is called when a registered node reports a new size. Updates are
// coalesced: only the last measurement in a turn of the event loop triggers
// a recompute.
func (n *Nav) measured(node Node) {
	n.batch++
	version := n.batch
	n.batchHandle = n.sched.Defer(func() {
		if n.closed || version != n.batch {
			return
		}
		n.batchHandle = 0
		n.recompute()
	})
}

// recompute derives the layout from the current inputs. It is idempotent:
// the same inputs yield the same layout and no callbacks.
func (n *Nav) recompute() {
	axis := n.position.Axis()
	n.transform.reorient(axis)
	n.offsets, _ = n.cache.get(n.tabs, n.reg.tabSizes(), axis, n.rtl)

	along := func(kind NodeKind) int {
		return n.reg.size(Node{Kind: kind}).along(axis)
	}
	n.container = max(0, along(ContainerNode)-along(ExtraLeftNode)-along(ExtraRightNode))
	var add int
	if n.showAdd() {
		add = along(AddButtonNode)
	}
	content := n.offsets.Total()
	n.needScroll = n.container < content+add
	visible := n.container - add
	if n.needScroll {
		visible = n.container - along(OperationsNode)
	}
	n.geom = geometry{
		axis:     axis,
		rtl:      n.rtl,
		centered: n.centered,
		visible:  max(0, visible),
		content:  content,
	}

	t := n.geom.Bounds().Clamp(n.transform.value())
	active, ok := n.offsets.Get(n.activeKey)
	if ok {
		t = n.geom.scrollIntoView(active, t)
	}
	n.transform.setActive(t)
	n.refresh()

	n.indicator.update(indicatorFor(active, ok, axis, n.rtl), n.publish)
}

// refresh recomputes everything downstream of the transform.
func (n *Nav) refresh() {
	switch {
	case len(n.tabs) == 0:
		n.rng = emptyRange
	case !n.needScroll:
		n.rng = Range{Start: 0, End: len(n.tabs) - 1}
	default:
		n.rng = VisibleRange(n.offsets, n.geom.axis, n.geom.rtlLead(), n.geom.window(n.transform.value()))
	}
	_, hidden := splitHidden(n.tabs, n.rng)
	n.menu.setItems(hidden)
	n.publish()
}

func (n *Nav) ping() Ping {
	var p Ping
	w := n.geom.window(n.transform.value())
	// content is hidden before the window's start or beyond its end
	before := w.start > 0
	after := w.end() < n.geom.content
	switch {
	case n.geom.axis == Vertical:
		p.Top, p.Bottom = before, after
	case n.geom.rtlLead():
		p.Right, p.Left = before, after
	default:
		p.Left, p.Right = before, after
	}
	return p
}

// publish builds the layout and notifies OnLayout if it has changed.
func (n *Nav) publish() {
	if n.closed {
		return
	}
	visible, hidden := splitHidden(n.tabs, n.rng)
	placements := make([]Placement, 0, len(visible))
	for i := n.rng.Start; i <= n.rng.End; i++ {
		_, off := n.offsets.At(i)
		placements = append(placements, Placement{Tab: n.tabs[i], Offset: off, Index: i})
	}
	l := Layout{
		Position:        n.position,
		RTL:             n.rtl,
		Centered:        n.centered,
		ActiveKey:       n.ActiveKey(),
		Visible:         visible,
		Hidden:          hidden,
		Range:           n.rng,
		Placements:      placements,
		Transform:       Transform{Axis: n.transform.axis, Value: n.transform.value()},
		Bounds:          n.geom.Bounds(),
		Indicator:       n.indicator.current,
		Ping:            n.ping(),
		Locked:          n.locked,
		Scrolling:       n.needScroll,
		OverflowOpen:    n.menu.open,
		Highlighted:     n.menu.highlighted,
		HasHighlight:    n.menu.hasHighlight,
		ShowMore:        len(hidden) > 0,
		ShowAdd:         n.showAdd(),
		AddInOperations: n.showAdd() && len(hidden) > 0,
		ContainerSize:   n.container,
		ContentSize:     n.offsets.Total(),
		VisibleCapacity: n.geom.visible,
	}
	if reflect.DeepEqual(l, n.layout) {
		return
	}
	n.layout = l
	n.logger.Debug("published tab layout",
		"visible", l.Range.Len(),
		"hidden", len(l.Hidden),
		"transform", l.Transform.Value,
		"capacity", l.VisibleCapacity,
		"content", l.ContentSize,
	)
	if n.options.OnLayout != nil {
		n.options.OnLayout(l)
	}
}

// Close cancels any deferred work and releases all measurement
// subscriptions. The Nav ignores all further input.
func (n *Nav) Close() {
	if n.closed {
		return
	}
	n.closed = true
	n.indicator.cancel()
	if n.lockTimer != 0 {
		n.sched.Cancel(n.lockTimer)
		n.lockTimer = 0
	}
	if n.batchHandle != 0 {
		n.sched.Cancel(n.batchHandle)
		n.batchHandle = 0
	}
	n.reg.releaseAll()
}

// immediate runs deferred work straight away. It is used when no Scheduler
// is configured.
type immediate struct{}

func (immediate) Defer(fn func()) Handle                  { fn(); return 0 }
func (immediate) RequestFrame(fn func()) Handle           { fn(); return 0 }
func (immediate) After(_ time.Duration, fn func()) Handle { fn(); return 0 }
func (immediate) Cancel(Handle)                           {}
