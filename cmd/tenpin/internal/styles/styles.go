// Package styles holds the lipgloss palette and styles of the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Lane palette.
var (
	ColorFg      = lipgloss.Color("#24292f") // primary foreground
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // error red
	ColorSuccess = lipgloss.Color("#1a7f37") // success green
	ColorWarning = lipgloss.Color("#9a6700") // warning amber
)

// Centralized style definitions for the TUI.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Scoresheet panel.
	SheetBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
	StatusStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)

	// Feedback lines.
	ErrorBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorError).
			Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	// Input and prompts.
	PromptStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	AskStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	HintStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)
