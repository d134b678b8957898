package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Pink        = lipgloss.Color("#E760FC")
	Yellow      = lipgloss.Color("#DBBD70")
	LightGrey   = lipgloss.Color("245")
	LighterGrey = lipgloss.Color("250")
	DarkGrey    = lipgloss.Color("#606362")
	White       = lipgloss.Color("#ffffff")
)

var (
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(DarkGrey)}
	DisabledTabColor = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LighterGrey)}
	InkBarColor      = Pink
	BaselineColor    = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LighterGrey)}

	HighlightBackground = lipgloss.Color("110")
	HighlightForeground = Black

	HelpKey = lipgloss.AdaptiveColor{
		Dark:  "ff",
		Light: "",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Dark:  "248",
		Light: "246",
	}
)
