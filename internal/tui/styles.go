package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorAccent = lipgloss.Color("11")  // yellow, the product accent
	colorDim    = lipgloss.Color("240") // gray
	colorText   = lipgloss.Color("252")
	colorError  = lipgloss.Color("9")
	colorBorder = lipgloss.Color("238")

	// Header
	styleHeader = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleHeaderMeta = lipgloss.NewStyle().
			Foreground(colorDim)

	// Forms
	styleLabel = lipgloss.NewStyle().
			Foreground(colorDim)

	styleLabelFocused = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	// Assurance panel
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleTocEntry = lipgloss.NewStyle().
			Foreground(colorText)

	styleTocMark = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Chat
	styleUserMsg = lipgloss.NewStyle().
			Foreground(colorText)

	styleUserTag = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	styleModelMsg = lipgloss.NewStyle().
			Foreground(colorText)

	styleModelTag = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)
)
