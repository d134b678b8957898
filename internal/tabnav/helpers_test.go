package tabnav

import (
	"fmt"
	"testing"
	"time"

	"github.com/leg100/tabstrip/internal/frame"
)

// fakeSource is a measurement source with sizes set by the test.
type fakeSource struct {
	sizes    map[Node]Size
	subs     map[Node]func(Size)
	released []Node
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		sizes: make(map[Node]Size),
		subs:  make(map[Node]func(Size)),
	}
}

func (s *fakeSource) Observe(n Node, fn func(Size)) Subscription {
	s.subs[n] = fn
	if size, ok := s.sizes[n]; ok {
		fn(size)
	}
	return &fakeSubscription{source: s, node: n}
}

// set changes the size of a node, notifying its observer.
func (s *fakeSource) set(n Node, size Size) {
	s.sizes[n] = size
	if fn, ok := s.subs[n]; ok {
		fn(size)
	}
}

type fakeSubscription struct {
	source *fakeSource
	node   Node
}

func (f *fakeSubscription) Release() {
	delete(f.source.subs, f.node)
	f.source.released = append(f.source.released, f.node)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// makeTabs makes n enabled, closable tabs keyed "tab-0", "tab-1", ...
func makeTabs(n int) []Tab {
	tabs := make([]Tab, n)
	for i := range n {
		tabs[i] = Tab{
			Key:      Key(fmt.Sprintf("tab-%d", i)),
			Label:    fmt.Sprintf("Tab %d", i),
			Closable: true,
		}
	}
	return tabs
}

type harness struct {
	nav    *Nav
	source *fakeSource
	loop   *frame.Loop
	clock  *fakeClock

	changes []Key
	edits   []string
	scrolls []ScrollDirection
	layouts int
}

type harnessOption func(*Options)

func withOptions(fn func(*Options)) harnessOption {
	return harnessOption(fn)
}

// setupNav constructs a Nav for a horizontal strip whose container is 100
// cells wide, with add and operations buttons 10 cells wide, and each tab 30
// cells wide.
func setupNav(t *testing.T, tabs []Tab, opts ...harnessOption) *harness {
	t.Helper()

	h := &harness{
		source: newFakeSource(),
		clock:  &fakeClock{now: time.Unix(0, 0)},
	}
	h.loop = frame.NewLoop(frame.WithClock(h.clock.Now))

	h.source.sizes[Node{Kind: ContainerNode}] = Size{Width: 100, Height: 10}
	h.source.sizes[Node{Kind: AddButtonNode}] = Size{Width: 10, Height: 1}
	h.source.sizes[Node{Kind: OperationsNode}] = Size{Width: 10, Height: 1}
	for _, tab := range tabs {
		h.source.sizes[TabNode(tab.Key)] = Size{Width: 30, Height: 1}
	}

	o := Options{
		Tabs:      tabs,
		Source:    h.source,
		Scheduler: h.loop,
		Editable:  true,
		OnChange:  func(k Key) { h.changes = append(h.changes, k) },
		OnEdit: func(a EditAction, k Key) {
			h.edits = append(h.edits, fmt.Sprintf("%s:%s", a, k))
		},
		OnScroll: func(d ScrollDirection) { h.scrolls = append(h.scrolls, d) },
		OnLayout: func(Layout) { h.layouts++ },
	}
	for _, fn := range opts {
		fn(&o)
	}
	h.nav = New(o)
	t.Cleanup(h.nav.Close)

	h.settle()
	h.scrolls = nil
	h.layouts = 0
	return h
}

// settle runs all outstanding work on the loop.
func (h *harness) settle() {
	h.loop.Drain()
	for h.loop.Pending() {
		h.clock.advance(time.Second)
		h.loop.Frame()
	}
}

func keys(tabs []Tab) []Key {
	return keysOf(tabs)
}
