package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the printer and the interactive UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders, active entry
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success notifications
	ErrorColor   = lipgloss.Color("#FF5555") // Red - destructive notifications
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	CodeBgColor  = lipgloss.Color("#262626") // Dark gray - preformatted document
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeaderTitleStyle is for the application title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderSubtitleStyle is for the line under the title
	HeaderSubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Category:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// NotificationTitleStyle is for default notification titles
	NotificationTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// DestructiveTitleStyle is for destructive notification titles
	DestructiveTitleStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// NotificationTextStyle is for notification descriptions
	NotificationTextStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TableIDStyle is for the id column of the category table
	TableIDStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Width(14)

	// TableNameStyle is for the name column of the category table
	TableNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(16)

	// TableDescStyle is for the description column of the category table
	TableDescStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Notification markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, clamped to the
// supported range.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// NotificationBoxStyle returns the border style for a notification
func NotificationBoxStyle(variant Variant, width int) lipgloss.Style {
	border := SuccessColor
	if variant == VariantDestructive {
		border = ErrorColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	line := ""
	for i := 0; i < width; i++ {
		line += char
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(line)
}
