package tui

import "github.com/charmbracelet/lipgloss"

// Pager and layout styles.
//
//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	RecordStyle = lipgloss.NewStyle().PaddingLeft(1)

	PageStyle = lipgloss.NewStyle().Padding(0, 1)

	CurrentPageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	EllipsisStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
)
