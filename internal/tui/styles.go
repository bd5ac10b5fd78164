package tui

import "charm.land/lipgloss/v2"

var (
	ColorAccent = lipgloss.Color("#00AA00") // matrix green
	ColorGray   = lipgloss.Color("#585858")
	ColorBorder = lipgloss.Color("#2a2a2a")
)

// Styles collects the lipgloss styles used by the view.
type Styles struct {
	Text       lipgloss.Style
	Caret      lipgloss.Style
	Border     lipgloss.Style
	StatusText lipgloss.Style
	StatusAdd  lipgloss.Style
	StatusMod  lipgloss.Style
	StatusDel  lipgloss.Style
	Error      lipgloss.Style
	BgFill     lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle(),
		Caret:      lipgloss.NewStyle().Foreground(ColorAccent),
		Border:     lipgloss.NewStyle().Foreground(ColorBorder),
		StatusText: lipgloss.NewStyle().Foreground(ColorGray),
		StatusAdd:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		StatusMod:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAA00")),
		StatusDel:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AA0000")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		BgFill:     lipgloss.NewStyle(),
	}
}
