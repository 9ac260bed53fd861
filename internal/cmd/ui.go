package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func successf(format string, args ...any) string {
	return successStyle.Render(fmt.Sprintf(format, args...))
}

func header(text string) string {
	return headerStyle.Render(text)
}
