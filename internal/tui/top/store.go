package top

import (
	"fmt"
	"slices"
	"sync"

	"github.com/leg100/tabstrip/internal/resource"
	"github.com/leg100/tabstrip/internal/tabnav"
)

// Tab is a tab along with the content rendered beneath the strip when it is
// active.
type Tab struct {
	tabnav.Tab

	Content string
}

// store is the authoritative list of the demo's tabs. The strip only ever
// sees a copy.
type store struct {
	mu    sync.Mutex
	tabs  []Tab
	added int
}

func newStore(tabs []Tab) *store {
	return &store{tabs: slices.Clone(tabs)}
}

// Get retrieves a tab by its key. It allows log records to be enriched with
// the tab a key refers to.
func (s *store) Get(key tabnav.Key) (tabnav.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return tabnav.Tab{}, resource.ErrNotFound
	}
	return s.tabs[i].Tab, nil
}

func (s *store) index(key tabnav.Key) int {
	return slices.IndexFunc(s.tabs, func(t Tab) bool { return t.Key == key })
}

// list returns the tabs for the strip.
func (s *store) list() []tabnav.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs := make([]tabnav.Tab, len(s.tabs))
	for i, t := range s.tabs {
		tabs[i] = t.Tab
	}
	return tabs
}

func (s *store) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tabs)
}

// position returns the 1-based position of a tab, or zero if it doesn't
// exist.
func (s *store) position(key tabnav.Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.index(key) + 1
}

func (s *store) content(key tabnav.Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return ""
	}
	if s.tabs[i].Content != "" {
		return s.tabs[i].Content
	}
	label := s.tabs[i].Label
	if label == "" {
		label = string(key)
	}
	return fmt.Sprintf("This is the content of %s.", label)
}

// add appends a new closable tab with a generated key.
func (s *store) add() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.added++
	tab := Tab{
		Tab: tabnav.Tab{
			Key:      tabnav.Key(resource.NewKey("tab")),
			Label:    fmt.Sprintf("New tab %d", s.added),
			Closable: true,
		},
	}
	s.tabs = append(s.tabs, tab)
	return tab
}

func (s *store) remove(key tabnav.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(key)
	if i < 0 {
		return resource.ErrNotFound
	}
	s.tabs = slices.Delete(s.tabs, i, i+1)
	return nil
}
