package preview

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	sidebarStyle = lipgloss.NewStyle().
			PaddingRight(2).
			MarginRight(2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(mutedColor)

	itemStyle = lipgloss.NewStyle().PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	labelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	activeStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)

	canvasStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)
)
