package tabs

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Keys(t *testing.T) {
	t.Run("next and previous", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(3)})

		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, tabnav.Key("tab-1"), m.ActiveKey())
		msgs := collect(cmd)
		assert.Contains(t, msgs, ChangeMsg{Key: "tab-1"})
		assert.Contains(t, msgs, TabClickMsg{Key: "tab-1"})

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, tabnav.Key("tab-2"), m.ActiveKey())
	})

	t.Run("scroll", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(runes("]"))
		assert.Equal(t, -4, m.Layout().Transform.Value)
		assert.True(t, m.Layout().Locked)

		m, _ = m.Update(runes("["))
		assert.Equal(t, 0, m.Layout().Transform.Value)
	})

	t.Run("scroll right to left", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(10), RTL: true})

		m, _ = m.Update(runes("]"))
		assert.Equal(t, 4, m.Layout().Transform.Value)
	})

	t.Run("overflow menu", func(t *testing.T) {
		m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(runes("m"))
		require.True(t, m.Layout().OverflowOpen)

		m, _ = m.Update(runes("j"))
		assert.Equal(t, tabnav.Key("tab-6"), m.Layout().Highlighted)

		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, m.Layout().OverflowOpen)
		assert.Equal(t, tabnav.Key("tab-6"), m.ActiveKey())
		assert.Contains(t, collect(cmd), ChangeMsg{Key: "tab-6"})
	})

	t.Run("space and enter open the overflow menu", func(t *testing.T) {
		for _, msg := range []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}, {Type: tea.KeyEnter}} {
			m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})
			require.True(t, m.Layout().ShowMore)

			m, _ = m.Update(msg)
			assert.True(t, m.Layout().OverflowOpen, msg.String())
			assert.Equal(t, tabnav.Key("tab-0"), m.ActiveKey(), msg.String())
		}
	})

	t.Run("enter does nothing without an overflow menu", func(t *testing.T) {
		m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(3)})

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, m.Layout().OverflowOpen)
	})

	t.Run("edit", func(t *testing.T) {
		tabs := numberedTabs(2)
		tabs[0].Closable = true
		m := setupModel(t, 40, 5, Options{Tabs: tabs, Editable: true})

		_, cmd := m.Update(runes("x"))
		assert.Equal(t, []tea.Msg{EditMsg{Action: tabnav.EditRemove, Key: "tab-0"}}, collect(cmd))

		_, cmd = m.Update(runes("+"))
		assert.Equal(t, []tea.Msg{EditMsg{Action: tabnav.EditAdd}}, collect(cmd))
	})
}

func TestModel_Mouse(t *testing.T) {
	t.Run("click tab", func(t *testing.T) {
		m := setupModel(t, 30, 6, Options{Tabs: threeTabs})

		m, cmd := m.Update(press(7, 0))
		assert.Equal(t, tabnav.Key("b"), m.ActiveKey())
		assert.Contains(t, collect(cmd), ChangeMsg{Key: "b"})
	})

	t.Run("close and add buttons", func(t *testing.T) {
		m := setupModel(t, 30, 6, Options{
			Tabs: []tabnav.Tab{
				{Key: "a", Label: "one", Closable: true},
				{Key: "b", Label: "two", Closable: true},
			},
			Editable: true,
		})

		// " one × " " two × " " + "
		_, cmd := m.Update(press(5, 0))
		assert.Equal(t, []tea.Msg{EditMsg{Action: tabnav.EditRemove, Key: "a"}}, collect(cmd))

		_, cmd = m.Update(press(15, 0))
		assert.Equal(t, []tea.Msg{EditMsg{Action: tabnav.EditAdd}}, collect(cmd))

		m, cmd = m.Update(press(8, 0))
		assert.Equal(t, tabnav.Key("b"), m.ActiveKey())
		assert.NotContains(t, collect(cmd), EditMsg{Action: tabnav.EditRemove, Key: "b"})
	})

	t.Run("overflow dropdown", func(t *testing.T) {
		m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(press(38, 0))
		require.True(t, m.Layout().OverflowOpen)

		d := m.view().dropdown
		require.NotNil(t, d)
		assert.Equal(t, region{x: 29, y: 2, w: 11, h: 6}, d.box)
		assert.Contains(t, m.Render(""), "│ tab-6   │")

		m, cmd := m.Update(press(31, 5))
		assert.False(t, m.Layout().OverflowOpen)
		assert.Equal(t, tabnav.Key("tab-8"), m.ActiveKey())
		assert.True(t, m.Layout().Range.Contains(8))
		assert.Contains(t, collect(cmd), ChangeMsg{Key: "tab-8"})
	})

	t.Run("click outside closes dropdown", func(t *testing.T) {
		m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(press(38, 0))
		require.True(t, m.Layout().OverflowOpen)

		m, _ = m.Update(press(5, 8))
		assert.False(t, m.Layout().OverflowOpen)
		assert.Equal(t, tabnav.Key("tab-0"), m.ActiveKey())
	})

	t.Run("drag", func(t *testing.T) {
		m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(press(10, 1))
		m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion})
		assert.Equal(t, -6, m.Layout().Transform.Value)

		m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionRelease})
		m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion})
		assert.Equal(t, -6, m.Layout().Transform.Value)
	})

	t.Run("wheel", func(t *testing.T) {
		m := setupModel(t, 40, 10, Options{Tabs: numberedTabs(10)})

		m, _ = m.Update(tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
		assert.Equal(t, -3, m.Layout().Transform.Value)

		// outside the strip
		m, _ = m.Update(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
		assert.Equal(t, -3, m.Layout().Transform.Value)
	})
}

func TestModel_SetTabs(t *testing.T) {
	m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(3), DefaultActiveKey: "tab-2"})
	require.Equal(t, tabnav.Key("tab-2"), m.ActiveKey())

	m, _ = m.Update(SetTabsMsg(numberedTabs(2)))
	assert.Len(t, m.Tabs(), 2)
	// the tab now last takes over
	assert.Equal(t, tabnav.Key("tab-1"), m.ActiveKey())
	assert.Equal(t, 14, m.Layout().ContentSize)

	// forgotten
	_, ok := m.source.sizes[tabnav.TabNode("tab-2")]
	assert.False(t, ok)
}

func TestModel_Controlled(t *testing.T) {
	active := tabnav.Key("tab-0")
	m := setupModel(t, 40, 5, Options{Tabs: numberedTabs(3), ActiveKey: &active})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabnav.Key("tab-0"), m.ActiveKey())
	assert.Contains(t, collect(cmd), ChangeMsg{Key: "tab-1"})

	m, _ = m.Update(SetActiveMsg("tab-1"))
	assert.Equal(t, tabnav.Key("tab-1"), m.ActiveKey())
}

func TestModel_FrameTick(t *testing.T) {
	m := New(Options{Tabs: numberedTabs(3)})
	t.Cleanup(m.Close)

	// the indicator is positioned on the next frame
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	require.NotNil(t, cmd)
	assert.False(t, m.Layout().Indicator.Valid)

	m, _ = m.Update(FrameMsg(time.Now()))
	assert.True(t, m.Layout().Indicator.Valid)
}

func TestModel_InitStartsSingleTick(t *testing.T) {
	m := New(Options{Tabs: numberedTabs(3)})
	t.Cleanup(m.Close)
	m.loop.RequestFrame(func() {})

	cmd := m.Init()
	assert.Equal(t, 1, countTicks(cmd))

	// the tick started by Init is still in flight
	m, cmd = m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	assert.Equal(t, 0, countTicks(cmd))

	// once it arrives another tick is started only if more frames are due
	m, cmd = m.Update(FrameMsg(time.Now()))
	assert.Equal(t, m.loop.Pending(), *m.ticking)
	assert.Equal(t, *m.ticking, countTicks(cmd) == 1)
}

func TestModel_SetPosition(t *testing.T) {
	m := setupModel(t, 40, 5, Options{Tabs: threeTabs})

	m, _ = m.Update(SetPositionMsg(tabnav.Left))
	m, _ = m.Update(FrameMsg(time.Now()))
	assert.Equal(t, tabnav.Left, m.Layout().Position)
	assert.Equal(t, " one   ┃", lines(m.View())[0])

	w, h := m.BodySize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 5, h)
}
