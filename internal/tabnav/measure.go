package tabnav

import (
	"fmt"
	"time"

	"github.com/leg100/tabstrip/internal/frame"
	"golang.org/x/exp/maps"
)

// Handle identifies work scheduled with a Scheduler.
type Handle = frame.Handle

// Scheduler defers work on the event loop. *frame.Loop implements it.
type Scheduler interface {
	// Defer runs fn once the current turn of the event loop completes.
	Defer(fn func()) Handle
	// RequestFrame runs fn on the next animation frame.
	RequestFrame(fn func()) Handle
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// NodeKind identifies a part of the strip whose size is observed.
type NodeKind int

const (
	// The whole strip, including extra content.
	ContainerNode NodeKind = iota
	ExtraLeftNode
	ExtraRightNode
	// The add button rendered after the last tab.
	AddButtonNode
	// The overflow "more" button, plus the add button when the dropdown is
	// shown.
	OperationsNode
	TabNodeKind
)

var nodeKindNames = map[NodeKind]string{
	ContainerNode:  "container",
	ExtraLeftNode:  "extra-left",
	ExtraRightNode: "extra-right",
	AddButtonNode:  "add",
	OperationsNode: "operations",
	TabNodeKind:    "tab",
}

// Node is an observable part of the strip.
type Node struct {
	Kind NodeKind
	// Key of the tab, for tab nodes only.
	Key Key
}

func (n Node) String() string {
	if n.Kind == TabNodeKind {
		return fmt.Sprintf("tab:%s", n.Key)
	}
	return nodeKindNames[n.Kind]
}

// TabNode returns the node for the tab with the given key.
func TabNode(key Key) Node {
	return Node{Kind: TabNodeKind, Key: key}
}

// Source delivers size measurements for nodes. The callback is invoked once
// when observation starts and again whenever the node's size changes.
// Redundant invocations with an unchanged size are tolerated.
type Source interface {
	Observe(node Node, fn func(Size)) Subscription
}

// Subscription is a handle on an observation.
type Subscription interface {
	Release()
}

// registry tracks the subscription and latest measurement for each observed
// node.
type registry struct {
	source Source
	subs   map[Node]Subscription
	sizes  map[Node]Size

	// changed is called whenever a registered node reports a new size.
	changed func(Node)
}

func newRegistry(source Source, changed func(Node)) *registry {
	return &registry{
		source:  source,
		subs:    make(map[Node]Subscription),
		sizes:   make(map[Node]Size),
		changed: changed,
	}
}

func (r *registry) registered(n Node) bool {
	_, ok := r.subs[n]
	return ok
}

// observe starts observing a node, unless it is already observed.
func (r *registry) observe(n Node) {
	if r.source == nil || r.registered(n) {
		return
	}
	// Mark as registered before subscribing: a source may invoke the
	// callback synchronously.
	r.subs[n] = nil
	sub := r.source.Observe(n, func(s Size) { r.measured(n, s) })
	if _, ok := r.subs[n]; ok {
		r.subs[n] = sub
	} else if sub != nil {
		// released from within the initial callback
		sub.Release()
	}
}

// release stops observing a node. The subscription is released before the
// measurement is dropped so no callback can arrive for a forgotten node.
func (r *registry) release(n Node) {
	sub, ok := r.subs[n]
	if !ok {
		return
	}
	delete(r.subs, n)
	if sub != nil {
		sub.Release()
	}
	delete(r.sizes, n)
}

// releaseAll releases every subscription. The nodes are collected first as a
// subscription may call back into the registry when released.
func (r *registry) releaseAll() {
	for _, n := range maps.Keys(r.subs) {
		r.release(n)
	}
}

func (r *registry) measured(n Node, s Size) {
	if !r.registered(n) {
		return
	}
	if prev, ok := r.sizes[n]; ok && prev == s {
		return
	}
	r.sizes[n] = s
	if r.changed != nil {
		r.changed(n)
	}
}

func (r *registry) size(n Node) Size {
	return r.sizes[n]
}

// tabSizes returns the measured size of each tab, keyed by tab key.
func (r *registry) tabSizes() map[Key]Size {
	sizes := make(map[Key]Size)
	for n, s := range r.sizes {
		if n.Kind == TabNodeKind {
			sizes[n.Key] = s
		}
	}
	return sizes
}
