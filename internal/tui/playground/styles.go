package playground

import "github.com/charmbracelet/lipgloss"

const trackIndent = "  "

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().MarginTop(1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)
