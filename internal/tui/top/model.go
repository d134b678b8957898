package top

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/resource"
	"github.com/leg100/tabstrip/internal/tabnav"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/tui/keys"
	"github.com/leg100/tabstrip/internal/tui/tabs"
	"github.com/leg100/tabstrip/internal/version"
)

const (
	horizontalRuleHeight = 1
	messageFooterHeight  = 1
)

type model struct {
	tabs  tabs.Model
	store *store

	logger *logging.Logger

	width  int
	height int

	editable bool

	showHelp  bool
	shortHelp help.Model

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string
	// the most recent warning or error logged
	logged *logging.Message

	dump *os.File
}

type Options struct {
	Tabs []Tab
	// Position is the name of the side of the content on which to place the
	// strip.
	Position         string
	RTL              bool
	Centered         bool
	Editable         bool
	HideAdd          bool
	DefaultActiveKey tabnav.Key

	Logger *logging.Logger
	// Debug dumps every message received to messages.log
	Debug bool
	Mouse bool
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, fmt.Errorf("opening message dump: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(logging.Options{})
	}
	store := newStore(opts.Tabs)
	logger.AddArgsUpdater(&logging.ReferenceUpdater[tabnav.Key, tabnav.Tab]{
		Getter: store,
		Name:   "tab",
		Field:  "Key",
	})

	position, ok := tabnav.ParsePosition(opts.Position)
	if !ok && opts.Position != "" {
		logger.Warn("unknown tab position, falling back to top", "position", opts.Position)
	}

	m := model{
		store:     store,
		logger:    logger,
		editable:  opts.Editable,
		shortHelp: newShortHelp(),
		dump:      dump,
	}
	m.tabs = tabs.New(tabs.Options{
		Tabs:             store.list(),
		Position:         position,
		RTL:              opts.RTL,
		Centered:         opts.Centered,
		Editable:         opts.Editable,
		HideAdd:          opts.HideAdd,
		DefaultActiveKey: opts.DefaultActiveKey,
		Extra:            m.extra(opts.DefaultActiveKey),
		Logger:           logger,
	})
	return m, nil
}

func (m model) Init() tea.Cmd {
	return m.tabs.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing quit again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting tabstrip"
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.shortHelp.Width = msg.Width

		// The strip and the body under it get everything except the footer.
		return m, m.updateTabs(tea.WindowSizeMsg{
			Width:  m.width,
			Height: m.viewHeight(),
		})
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil
		m.logged = nil

		layout := m.tabs.Layout()
		switch {
		case key.Matches(msg, keys.Global.Quit):
			// quitting requires confirmation
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Position):
			next := tabnav.Position((int(layout.Position) + 1) % len(tabnav.PositionNames()))
			m.info = fmt.Sprintf("moved strip to the %s", next)
			return m, m.updateTabs(tabs.SetPositionMsg(next))
		case key.Matches(msg, keys.Global.RTL):
			return m, m.updateTabs(tabs.SetRTLMsg(!layout.RTL))
		case key.Matches(msg, keys.Global.Centered):
			return m, m.updateTabs(tabs.SetCenteredMsg(!layout.Centered))
		case key.Matches(msg, keys.Global.Editable):
			m.editable = !m.editable
			return m, m.updateTabs(tabs.SetEditableMsg(m.editable))
		default:
			return m, m.updateTabs(msg)
		}
	case tabs.ChangeMsg:
		m.logger.Debug("activated tab", "key", msg.Key)
		return m, m.updateTabs(tabs.SetExtraMsg(m.extra(msg.Key)))
	case tabs.EditMsg:
		return m, m.edit(msg)
	case tabs.ScrollMsg:
		m.logger.Debug("scrolled tab strip", "direction", msg.Direction)
	case tabs.TabClickMsg:
	case resource.Event[logging.Message]:
		switch msg.Payload.Level {
		case "WARN", "ERROR":
			m.logged = &msg.Payload
		}
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Frames, mouse events, and anything else for the strip.
		cmds = append(cmds, m.updateTabs(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *model) updateTabs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.Update(msg)
	return cmd
}

// edit carries out an edit requested by the user. The strip is then told of
// the new list of tabs.
func (m *model) edit(msg tabs.EditMsg) tea.Cmd {
	switch msg.Action {
	case tabnav.EditAdd:
		tab := m.store.add()
		m.logger.Info("added tab", "key", tab.Key)
		return tea.Batch(
			m.updateTabs(tabs.SetTabsMsg(m.store.list())),
			m.updateTabs(tabs.SetActiveMsg(tab.Key)),
			m.updateTabs(tabs.SetExtraMsg(m.extra(tab.Key))),
			tui.ReportInfo(fmt.Sprintf("added %s", tab.Label)),
		)
	case tabnav.EditRemove:
		// log before removal so the record can be enriched with the tab
		m.logger.Info("removing tab", "key", msg.Key)
		if err := m.store.remove(msg.Key); err != nil {
			return tui.ReportError(err, "removing tab %s", msg.Key)
		}
		cmd := m.updateTabs(tabs.SetTabsMsg(m.store.list()))
		return tea.Batch(cmd, m.updateTabs(tabs.SetExtraMsg(m.extra(m.tabs.ActiveKey()))))
	}
	return nil
}

// extra renders the position of the active tab, shown at the far end of the
// strip.
func (m model) extra(active tabnav.Key) tabs.Extra {
	n := m.store.len()
	if n == 0 {
		return tabs.Extra{}
	}
	return tabs.Extra{
		Right: tui.Padded.Copy().Foreground(tui.LightGrey).Render(
			fmt.Sprintf("%d/%d", max(1, m.store.position(active)), n),
		),
	}
}

var (
	errorStyle   = tui.Padded.Copy().Foreground(tui.ErrorLogLevel)
	warnStyle    = tui.Padded.Copy().Foreground(tui.WarnLogLevel)
	infoStyle    = tui.Padded.Copy()
	versionStyle = tui.Padded.Copy().Foreground(tui.Pink)
	bodyStyle    = tui.Regular.Copy().Margin(1, 2)
)

func (m model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = fullHelpView(
			helpSection{heading: "strip", bindings: keys.KeyMapToSlice(keys.Strip)},
			helpSection{heading: "dropdown", bindings: keys.KeyMapToSlice(keys.Menu)},
			helpSection{heading: "general", bindings: keys.KeyMapToSlice(keys.Global)},
		)
	case m.store.len() == 0:
		body = "No tabs."
	default:
		// content may be cropped line by line
		body = tui.SanitizeColors(m.store.content(m.tabs.ActiveKey()))
	}
	main := m.tabs.Render(bodyStyle.Render(body))

	metadata := versionStyle.Render(version.Version)

	// Render a message in the bottom left corner of the footer, using whatever
	// space remains to the left of the metadata. Help is shown when there is
	// nothing else to say.
	var footerMsg string
	switch {
	case m.showQuitPrompt:
		footerMsg = infoStyle.Render(fmt.Sprintf("Quit tabstrip? (y/N): %s", m.quitPrompt.View()))
	case m.err != nil:
		footerMsg = errorStyle.Render("Error: " + m.err.Error())
	case m.info != "":
		footerMsg = infoStyle.Render(m.info)
	case m.logged != nil:
		style := warnStyle
		if m.logged.Level == "ERROR" {
			style = errorStyle
		}
		footerMsg = style.Render(m.logged.Level + " " + m.logged.Message)
	default:
		bindings := []key.Binding{keys.Strip.Next, keys.Strip.More, keys.Global.Position, keys.Global.Help, keys.Global.Quit}
		footerMsg = tui.Padded.Render(m.shortHelp.ShortHelpView(bindings))
	}
	footerWidth := max(0, m.width-tui.Width(metadata))

	return lipgloss.JoinVertical(
		lipgloss.Top,
		main,
		strings.Repeat("─", m.width),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			tui.Regular.
				Inline(true).
				MaxWidth(footerWidth).
				Width(footerWidth).
				Render(footerMsg),
			metadata,
		),
	)
}

// viewHeight retrieves the height available to the strip and the body,
// above the footer.
func (m model) viewHeight() int {
	return max(0, m.height-horizontalRuleHeight-messageFooterHeight)
}
