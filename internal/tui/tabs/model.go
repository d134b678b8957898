// Package tabs renders a tab strip in the terminal. Layout decisions are made
// by the tabnav engine; this package measures the strip's parts, feeds the
// sizes to the engine, and draws the layout it publishes.
package tabs

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/frame"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/tui/keys"
)

const (
	frameInterval = time.Second / 60
	// keyScrollStep is how far the strip scrolls per key press, in cells.
	keyScrollStep = 4
	// wheelScrollStep is how far the strip scrolls per mouse wheel event.
	wheelScrollStep = 3
)

// Extra is rendered content placed either side of the tabs, within the strip.
type Extra struct {
	Left  string
	Right string
}

type Options struct {
	Tabs     []tabnav.Tab
	Position tabnav.Position
	RTL      bool
	Centered bool
	Editable bool
	HideAdd  bool
	// ActiveKey puts the active tab under the host's control, see
	// tabnav.Options.
	ActiveKey        *tabnav.Key
	DefaultActiveKey tabnav.Key
	Extra            Extra
	Logger           logging.Interface
	// Clock overrides the clock used for timers.
	Clock func() time.Time
}

// ChangeMsg is sent when the user activates a different tab.
type ChangeMsg struct {
	Key tabnav.Key
}

// TabClickMsg is sent whenever the user clicks an enabled tab.
type TabClickMsg struct {
	Key tabnav.Key
}

// EditMsg asks the host to add or remove a tab. It is up to the host to
// update the tabs accordingly with SetTabsMsg.
type EditMsg struct {
	Action tabnav.EditAction
	Key    tabnav.Key
}

// ScrollMsg is sent whenever the strip scrolls.
type ScrollMsg struct {
	Direction tabnav.ScrollDirection
}

// FrameMsg advances animation frames and timers.
type FrameMsg time.Time

type (
	SetTabsMsg     []tabnav.Tab
	SetActiveMsg   tabnav.Key
	SetPositionMsg tabnav.Position
	SetRTLMsg      bool
	SetCenteredMsg bool
	SetEditableMsg bool
	SetExtraMsg    Extra
)

// Model is a tab strip placed on one side of a content area.
type Model struct {
	nav    *tabnav.Nav
	loop   *frame.Loop
	source *measurer
	// messages emitted by the engine since they were last collected
	events *[]tea.Msg

	// size of the area containing the strip and the content
	width  int
	height int

	extra   Extra
	hideAdd bool

	// ticking is true while a frame tick is in flight. It is shared between
	// copies of the model so that a tick started from Init is not forgotten.
	ticking  *bool
	dragging bool
	lastX    int
	lastY    int
}

func New(opts Options) Model {
	var loopOpts []frame.Option
	if opts.Clock != nil {
		loopOpts = append(loopOpts, frame.WithClock(opts.Clock))
	}
	m := Model{
		loop:    frame.NewLoop(loopOpts...),
		source:  newMeasurer(),
		events:  new([]tea.Msg),
		ticking: new(bool),
		extra:   opts.Extra,
		hideAdd: opts.HideAdd,
	}
	emit := func(msg tea.Msg) { *m.events = append(*m.events, msg) }

	// Seed the sizes so the first layout doesn't wait on a measurement.
	m.report(strip{tabs: opts.Tabs, position: opts.Position, editable: opts.Editable, showAdd: opts.Editable && !opts.HideAdd, extra: opts.Extra})

	m.nav = tabnav.New(tabnav.Options{
		Tabs:             opts.Tabs,
		Source:           m.source,
		Scheduler:        m.loop,
		Logger:           opts.Logger,
		Position:         opts.Position,
		RTL:              opts.RTL,
		Centered:         opts.Centered,
		Editable:         opts.Editable,
		HideAdd:          opts.HideAdd,
		ActiveKey:        opts.ActiveKey,
		DefaultActiveKey: opts.DefaultActiveKey,
		OnChange:         func(k tabnav.Key) { emit(ChangeMsg{Key: k}) },
		OnTabClick:       func(k tabnav.Key) { emit(TabClickMsg{Key: k}) },
		OnEdit: func(a tabnav.EditAction, k tabnav.Key) {
			emit(EditMsg{Action: a, Key: k})
		},
		OnScroll: func(d tabnav.ScrollDirection) { emit(ScrollMsg{Direction: d}) },
	})
	m.loop.Drain()
	*m.events = nil
	return m
}

func (m Model) Init() tea.Cmd {
	return m.settle()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case FrameMsg:
		*m.ticking = false
		m.loop.Frame()
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case SetTabsMsg:
		s := m.strip()
		s.tabs = msg
		m.report(s)
		m.nav.SetTabs(msg)
	case SetActiveMsg:
		m.nav.SetActiveKey(tabnav.Key(msg))
	case SetPositionMsg:
		m.nav.SetPosition(tabnav.Position(msg))
	case SetRTLMsg:
		m.nav.SetRTL(bool(msg))
	case SetCenteredMsg:
		m.nav.SetCentered(bool(msg))
	case SetEditableMsg:
		m.nav.SetEditable(bool(msg))
	case SetExtraMsg:
		m.extra = Extra(msg)
	default:
		return m, nil
	}
	cmd := m.settle()
	return m, cmd
}

// settle brings the engine up to date with the strip as it would now be
// rendered, and relays anything the engine emitted.
func (m *Model) settle() tea.Cmd {
	m.report(m.strip())
	m.loop.Drain()

	cmds := make([]tea.Cmd, 0, len(*m.events)+1)
	for _, ev := range *m.events {
		cmds = append(cmds, tui.CmdHandler(ev))
	}
	*m.events = (*m.events)[:0]

	if m.loop.Pending() && !*m.ticking {
		*m.ticking = true
		cmds = append(cmds, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
			return FrameMsg(t)
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) strip() strip {
	return strip{
		tabs:     m.nav.Tabs(),
		position: m.nav.Layout().Position,
		editable: m.nav.Editable(),
		showAdd:  m.nav.Editable() && !m.hideAdd,
		extra:    m.extra,
		width:    m.width,
		height:   m.height,
	}
}

// report measures every part of the strip.
func (m Model) report(s strip) {
	keep := make(map[tabnav.Key]bool, len(s.tabs))
	for _, t := range s.tabs {
		keep[t.Key] = true
	}
	m.source.forget(keep)
	for node, size := range s.sizes() {
		m.source.report(node, size)
	}
}

// Layout returns the layout most recently published by the engine.
func (m Model) Layout() tabnav.Layout {
	return m.nav.Layout()
}

func (m Model) ActiveKey() tabnav.Key {
	return m.nav.ActiveKey()
}

func (m Model) Tabs() []tabnav.Tab {
	return m.nav.Tabs()
}

func (m Model) view() stripView {
	return newStripView(m.nav.Layout(), m.strip())
}

// View renders the strip alone.
func (m Model) View() string {
	return m.view().render()
}

// BodySize returns the size available to content rendered alongside the
// strip.
func (m Model) BodySize() (width, height int) {
	v := m.view()
	width, height = m.width, m.height
	if v.horizontal {
		height -= v.bounds.h
	} else {
		width -= v.bounds.w
	}
	return max(0, width), max(0, height)
}

// Render places the strip and any open dropdown around the body, which is
// sized to BodySize.
func (m Model) Render(body string) string {
	v := m.view()
	bw, bh := m.BodySize()
	var menu string
	if d := v.dropdown; d != nil {
		menu = d.render()
		if v.horizontal {
			bh -= d.box.h
		} else {
			bw -= d.box.w
		}
	}
	// Crop before padding: content wider than the body is cut off rather
	// than wrapped.
	if bw <= 0 || bh <= 0 {
		body = ""
	} else {
		body = lipgloss.NewStyle().MaxWidth(bw).MaxHeight(bh).Render(body)
		body = lipgloss.NewStyle().Width(bw).Height(bh).Render(body)
	}

	header := v.render()
	switch v.layout.Position {
	case tabnav.Bottom:
		if menu != "" {
			menu = lipgloss.NewStyle().MarginLeft(v.dropdown.box.x).Render(menu)
			return lipgloss.JoinVertical(lipgloss.Left, body, menu, header)
		}
		return lipgloss.JoinVertical(lipgloss.Left, body, header)
	case tabnav.Left:
		if menu != "" {
			menu = lipgloss.NewStyle().MarginTop(v.dropdown.box.y).Render(menu)
			return lipgloss.JoinHorizontal(lipgloss.Top, header, menu, body)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, header, body)
	case tabnav.Right:
		if menu != "" {
			menu = lipgloss.NewStyle().MarginTop(v.dropdown.box.y).Render(menu)
			return lipgloss.JoinHorizontal(lipgloss.Top, body, menu, header)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, body, header)
	default:
		if menu != "" {
			menu = lipgloss.NewStyle().MarginLeft(v.dropdown.box.x).Render(menu)
			return lipgloss.JoinVertical(lipgloss.Left, header, menu, body)
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
}

// Close stops the engine. The model must not be used afterwards.
func (m Model) Close() {
	m.nav.Close()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	l := m.nav.Layout()
	if l.OverflowOpen {
		switch {
		case key.Matches(msg, keys.Menu.Up):
			m.nav.MenuKey(tabnav.MenuUp)
		case key.Matches(msg, keys.Menu.Down):
			m.nav.MenuKey(tabnav.MenuDown)
		case key.Matches(msg, keys.Menu.Escape):
			m.nav.MenuKey(tabnav.MenuEscape)
		case key.Matches(msg, keys.Menu.Space):
			m.nav.MenuKey(tabnav.MenuSpace)
		case key.Matches(msg, keys.Menu.Enter):
			m.nav.MenuKey(tabnav.MenuEnter)
		case key.Matches(msg, keys.Menu.Remove):
			if l.HasHighlight {
				m.nav.Remove(l.Highlighted)
			}
		}
		return
	}
	switch {
	case key.Matches(msg, keys.Strip.Next):
		m.nav.Activate(1)
	case key.Matches(msg, keys.Strip.Prev):
		m.nav.Activate(-1)
	case key.Matches(msg, keys.Strip.ScrollForward):
		m.scroll(true, keyScrollStep)
	case key.Matches(msg, keys.Strip.ScrollBack):
		m.scroll(false, keyScrollStep)
	case key.Matches(msg, keys.Strip.Focus):
		m.nav.Focus(m.nav.ActiveKey())
	case key.Matches(msg, keys.Strip.More):
		if l.ShowMore {
			m.nav.MenuKey(tabnav.MenuDown)
		}
	case l.ShowMore && key.Matches(msg, keys.Menu.Space):
		m.nav.MenuKey(tabnav.MenuSpace)
	case l.ShowMore && key.Matches(msg, keys.Menu.Enter):
		m.nav.MenuKey(tabnav.MenuEnter)
	case key.Matches(msg, keys.Strip.Add):
		m.nav.Add()
	case key.Matches(msg, keys.Strip.Remove):
		m.nav.Remove(m.nav.ActiveKey())
	}
}

// scroll moves the strip to reveal tabs further along (forward) or back
// towards the first tab.
func (m *Model) scroll(forward bool, step int) {
	l := m.nav.Layout()
	delta := -step
	if l.Position.Horizontal() && l.RTL && !l.Centered {
		delta = step
	}
	if !forward {
		delta = -delta
	}
	m.nav.Drag(delta, delta)
}
