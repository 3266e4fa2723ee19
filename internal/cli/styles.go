package cli

import "github.com/charmbracelet/lipgloss"

// promptStyle renders the interactive prompt. Only applied when stdin is a
// terminal; piped sessions never see styled bytes.
var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6"))
