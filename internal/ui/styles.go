package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds lipgloss colors matching a Theme.
type Palette struct {
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	darkPalette = Palette{
		Accent:  lipgloss.Color("39"),
		Text:    lipgloss.Color("252"),
		Dim:     lipgloss.Color("245"),
		Success: lipgloss.Color("82"),
		Error:   lipgloss.Color("196"),
	}
	lightPalette = Palette{
		Accent:  lipgloss.Color("27"),
		Text:    lipgloss.Color("235"),
		Dim:     lipgloss.Color("240"),
		Success: lipgloss.Color("28"),
		Error:   lipgloss.Color("124"),
	}
	noColorPalette = Palette{
		Accent:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

// CurrentPalette returns the lipgloss palette of the active theme.
func CurrentPalette() Palette {
	switch GetCurrentTheme().Name {
	case "none":
		return noColorPalette
	case "light":
		return lightPalette
	default:
		return darkPalette
	}
}

// Styles groups the lipgloss styles used by the result report.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Good  lipgloss.Style
	Bad   lipgloss.Style
}

// CurrentStyles builds the report styles for the active theme. lipgloss
// strips the colors itself when the output is not a terminal.
func CurrentStyles() Styles {
	p := CurrentPalette()
	noColor := GetCurrentTheme().Name == "none"
	title := lipgloss.NewStyle().Foreground(p.Accent)
	if !noColor {
		title = title.Bold(true).Underline(true)
	}
	return Styles{
		Title: title,
		Label: lipgloss.NewStyle().Foreground(p.Dim).Width(20),
		Value: lipgloss.NewStyle().Foreground(p.Text),
		Good:  lipgloss.NewStyle().Foreground(p.Success),
		Bad:   lipgloss.NewStyle().Foreground(p.Error),
	}
}
