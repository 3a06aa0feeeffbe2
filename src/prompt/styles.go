package prompt

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#06B6D4")
	green  = lipgloss.Color("#10B981")
	muted  = lipgloss.Color("#6B7280")

	labelStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(green)
	helpStyle    = lipgloss.NewStyle().Foreground(muted)
	answerStyle  = lipgloss.NewStyle().Foreground(accent)
)
