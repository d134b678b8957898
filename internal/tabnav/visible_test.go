package tabnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleRange(t *testing.T) {
	tabs := makeTabs(5)
	sizes := make(map[Key]Size)
	for _, tab := range tabs {
		sizes[tab.Key] = Size{Width: 30, Height: 1}
	}
	offsets := CalculateOffsets(tabs, sizes, Horizontal, false)

	tests := []struct {
		name   string
		window window
		want   Range
	}{
		{
			name:   "three tabs fill the window exactly",
			window: window{start: 0, size: 90},
			want:   Range{Start: 0, End: 2},
		},
		{
			name:   "partially visible tab at the end is kept",
			window: window{start: 0, size: 91},
			want:   Range{Start: 0, End: 3},
		},
		{
			name:   "partially visible tab at the start is kept",
			window: window{start: 45, size: 30},
			want:   Range{Start: 1, End: 2},
		},
		{
			name:   "tab ending at the window start is hidden",
			window: window{start: 60, size: 30},
			want:   Range{Start: 2, End: 2},
		},
		{
			name:   "window beyond the content",
			window: window{start: 200, size: 30},
			want:   emptyRange,
		},
		{
			name:   "window larger than the content",
			window: window{start: 0, size: 500},
			want:   Range{Start: 0, End: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(offsets, Horizontal, false, tt.window)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no tabs", func(t *testing.T) {
		got := VisibleRange(Offsets{}, Horizontal, false, window{size: 100})
		assert.True(t, got.Empty())
		assert.Equal(t, 0, got.Len())
	})
}

func TestVisibleRange_Coverage(t *testing.T) {
	tabs := makeTabs(7)
	sizes := make(map[Key]Size)
	for i, tab := range tabs {
		sizes[tab.Key] = Size{Width: 5 + i*3, Height: 1}
	}
	offsets := CalculateOffsets(tabs, sizes, Horizontal, false)

	for start := -20; start <= offsets.Total()+20; start += 7 {
		for _, size := range []int{0, 10, 33, 120} {
			r := VisibleRange(offsets, Horizontal, false, window{start: start, size: size})
			visible, hidden := splitHidden(tabs, r)

			assert.Equal(t, len(tabs), len(visible)+len(hidden))
			seen := make(map[Key]int)
			for _, tab := range append(visible, hidden...) {
				seen[tab.Key]++
			}
			for _, tab := range tabs {
				assert.Equal(t, 1, seen[tab.Key], "start=%d size=%d key=%s", start, size, tab.Key)
			}
		}
	}
}
