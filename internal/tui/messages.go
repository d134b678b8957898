package tui

import tea "github.com/charmbracelet/bubbletea"

// InfoMsg is an informational message rendered in the footer.
type InfoMsg string

// ErrorMsg is an error rendered in the footer and logged.
type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

func ReportInfo(msg string) tea.Cmd {
	return CmdHandler(InfoMsg(msg))
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
