package tabs

import "github.com/leg100/tabstrip/internal/tabnav"

// measurer is the measurement source for the layout engine. The model
// reports the size of each part of the strip after every update; observers
// are only notified of sizes that have changed.
type measurer struct {
	subs  map[tabnav.Node]func(tabnav.Size)
	sizes map[tabnav.Node]tabnav.Size
}

func newMeasurer() *measurer {
	return &measurer{
		subs:  make(map[tabnav.Node]func(tabnav.Size)),
		sizes: make(map[tabnav.Node]tabnav.Size),
	}
}

func (m *measurer) Observe(n tabnav.Node, fn func(tabnav.Size)) tabnav.Subscription {
	m.subs[n] = fn
	if size, ok := m.sizes[n]; ok {
		fn(size)
	}
	return &subscription{measurer: m, node: n}
}

func (m *measurer) report(n tabnav.Node, size tabnav.Size) {
	if prev, ok := m.sizes[n]; ok && prev == size {
		return
	}
	m.sizes[n] = size
	if fn, ok := m.subs[n]; ok {
		fn(size)
	}
}

// forget drops the sizes of tabs that are no longer in the strip.
func (m *measurer) forget(keep map[tabnav.Key]bool) {
	for n := range m.sizes {
		if n.Kind == tabnav.TabNodeKind && !keep[n.Key] {
			delete(m.sizes, n)
		}
	}
}

type subscription struct {
	measurer *measurer
	node     tabnav.Node
}

func (s *subscription) Release() {
	delete(s.measurer.subs, s.node)
}
