package app

import "github.com/charmbracelet/lipgloss"

// Styles controls the shell's chrome. The editor has its own editor.Style.
type Styles struct {
	TitleBar lipgloss.Style
	MenuBar  lipgloss.Style
	MenuItem lipgloss.Style
	// MenuActive is the open menu title and the highlighted dropdown item.
	MenuActive lipgloss.Style
	Dropdown   lipgloss.Style
	StatusBar  lipgloss.Style

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

func DefaultStyles() Styles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	active := lipgloss.NewStyle().Reverse(true)
	return Styles{
		TitleBar:   bar.Bold(true),
		MenuBar:    bar,
		MenuItem:   bar,
		MenuActive: active,
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("244")),
		StatusBar: bar,

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(0, 2),
		DialogTitle:  lipgloss.NewStyle().Bold(true),
		Button:       lipgloss.NewStyle(),
		ButtonActive: active,
	}
}
