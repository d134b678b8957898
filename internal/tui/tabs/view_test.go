package tabs

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeTabs = []tabnav.Tab{
	{Key: "a", Label: "one"},
	{Key: "b", Label: "two"},
	{Key: "c", Label: "three"},
}

func TestView_Horizontal(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "top",
			opts: Options{Tabs: threeTabs},
			want: []string{
				" one  two  three " + strings.Repeat(" ", 13),
				strings.Repeat("━", 5) + strings.Repeat("─", 25),
			},
		},
		{
			name: "right to left",
			opts: Options{Tabs: threeTabs, RTL: true},
			want: []string{
				strings.Repeat(" ", 13) + " three  two  one ",
				strings.Repeat("─", 25) + strings.Repeat("━", 5),
			},
		},
		{
			name: "bottom",
			opts: Options{Tabs: threeTabs, Position: tabnav.Bottom},
			want: []string{
				strings.Repeat("━", 5) + strings.Repeat("─", 25),
				" one  two  three " + strings.Repeat(" ", 13),
			},
		},
		{
			name: "editable",
			opts: Options{
				Tabs: []tabnav.Tab{
					{Key: "a", Label: "one", Closable: true},
					{Key: "b", Label: "two"},
				},
				Editable: true,
			},
			want: []string{
				" one ×  two  + " + strings.Repeat(" ", 15),
				strings.Repeat("━", 7) + strings.Repeat("─", 23),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupModel(t, 30, 6, tt.opts)

			assert.Equal(t, tt.want, lines(m.View()))
		})
	}
}

func TestView_Vertical(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: threeTabs, Position: tabnav.Left})

		want := []string{
			" one   ┃",
			" two   │",
			" three │",
			"       │",
			"       │",
		}
		assert.Equal(t, want, lines(m.View()))
	})

	t.Run("right", func(t *testing.T) {
		m := setupModel(t, 40, 3, Options{Tabs: threeTabs, Position: tabnav.Right})

		want := []string{
			"┃ one   ",
			"│ two   ",
			"│ three ",
		}
		assert.Equal(t, want, lines(m.View()))
	})
}

func TestView_Overflow(t *testing.T) {
	m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

	l := m.Layout()
	require.True(t, l.Scrolling)
	assert.Equal(t, 37, l.VisibleCapacity)
	assert.Equal(t, tabnav.Range{Start: 0, End: 5}, l.Range)

	want := []string{
		" tab-0  tab-1  tab-2  tab-3  tab-4  t ⋯ ",
		strings.Repeat("━", 7) + strings.Repeat("─", 29) + "▸" + strings.Repeat("─", 3),
	}
	assert.Equal(t, want, lines(m.View()))
}

func TestView_Render(t *testing.T) {
	t.Run("top", func(t *testing.T) {
		m := setupModel(t, 30, 6, Options{Tabs: threeTabs})

		w, h := m.BodySize()
		assert.Equal(t, 30, w)
		assert.Equal(t, 4, h)

		got := m.Render("body")
		assert.Equal(t, 6, lipgloss.Height(got))
		assert.True(t, strings.HasPrefix(lines(got)[2], "body"))
	})

	t.Run("left", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: threeTabs, Position: tabnav.Left})

		w, h := m.BodySize()
		assert.Equal(t, 32, w)
		assert.Equal(t, 5, h)

		got := m.Render("body")
		assert.Equal(t, 5, lipgloss.Height(got))
		assert.True(t, strings.HasPrefix(lines(got)[0], " one   ┃body"))
	})

	t.Run("body cropped", func(t *testing.T) {
		m := setupModel(t, 30, 4, Options{Tabs: threeTabs})

		got := m.Render(strings.Repeat("x", 50) + "\n2\n3\n4\n5")
		assert.Equal(t, 4, lipgloss.Height(got))
		assert.Equal(t, 30, lipgloss.Width(got))
	})
}

func TestCrop(t *testing.T) {
	assert.Equal(t, " tab-5 ", crop(" tab-5 ", 0, 0))
	assert.Equal(t, " t", crop(" tab-5 ", 0, 5))
	assert.Equal(t, "-5 ", crop(" tab-5 ", 4, 0))
	assert.Equal(t, "", crop(" tab-5 ", 4, 3))
}

func TestJoinSegments(t *testing.T) {
	got := joinSegments(10, []segment{
		{pos: 6, width: 2, rendered: "cd"},
		{pos: 1, width: 2, rendered: "ab"},
		// overlaps ab
		{pos: 2, width: 2, rendered: "xx"},
		// beyond the end
		{pos: 9, width: 2, rendered: "yy"},
	})
	assert.Equal(t, " ab   cd  ", got)
}
