package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/ui"
	"github.com/muurk/readme-agent/internal/version"
)

// Application branding constants
const (
	AppName     = "README Agent"
	AppTagline  = "Generate comprehensive documentation for your GitHub projects"
	URLLabel    = "GitHub Repository URL"
	URLExample  = "https://github.com/username/repository"
	LoadingText = "Analyzing repository and generating documentation..."
)

// Layout constants
const (
	SidebarWidth     = 42 // Fixed sidebar column width
	MinTerminalWidth = 90 // Minimum supported terminal width
	MinPreviewHeight = 6  // Smallest document viewport
)

// Color palette, shared with the non-interactive printer
var (
	PrimaryColor   = ui.PrimaryColor
	ErrorColor     = ui.ErrorColor
	TextColor      = ui.TextColor
	SubtleColor    = ui.MutedColor
	BorderColor    = ui.PrimaryColor
	CodeBgColor    = ui.CodeBgColor
)

var (
	// Title style for the app header
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Sidebar heading
	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Sidebar entry (inactive)
	EntryStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Sidebar entry description (inactive)
	EntryDescStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Sidebar entry (active)
	ActiveEntryStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true)

	// Sidebar entry description (active)
	ActiveEntryDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E0D8FF")).
				Background(PrimaryColor)

	// Field label above the URL input
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Generate button, idle
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// Generate button, disabled while generating
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Background(lipgloss.Color("#3A3A3A")).
				Padding(0, 2)

	// Outline buttons in the document card header
	OutlineButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SubtleColor).
				Padding(0, 1)

	// Buttons with no action
	InertButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3A3A3A")).
				Padding(0, 1)

	// Document card title
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Document body, preformatted
	DocumentStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(CodeBgColor).
			Padding(0, 1)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Loading banner text
	LoadingStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Focused input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor)

	// Blurred input style
	BlurredInputStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SubtleColor)
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// BuildHeaderContent creates the header: app name, version and tagline
func BuildHeaderContent() string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render(AppName),
		" ",
		lipgloss.NewStyle().Foreground(SubtleColor).Render("v"+AppVersion()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(AppTagline))
}

// renderHeader renders the header section with its bottom rule
func renderHeader(terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(BuildHeaderContent())
}

// renderFooter renders the footer section with its top rule
func renderFooter(footerText string, terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(footerText)
}

// RenderApplicationContainer wraps a screen in the shared frame:
// header, content, footer and an outer border filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(terminalWidth),
		lipgloss.NewStyle().Width(terminalWidth-4).Render(content),
		renderFooter(footerText, terminalWidth),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// contentTop is the screen row where the content area starts:
// the outer border plus the header block.
func contentTop(terminalWidth int) int {
	return 1 + lipgloss.Height(renderHeader(terminalWidth))
}

// contentHeight is the number of rows left for the content area.
func contentHeight(terminalWidth, terminalHeight, footerLines int) int {
	h := terminalHeight - contentTop(terminalWidth) - footerLines - 2 // footer rule + outer bottom border
	if h < MinPreviewHeight {
		return MinPreviewHeight
	}
	return h
}
