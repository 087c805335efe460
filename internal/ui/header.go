package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is a bordered banner with a title, a subtitle and optional
// key/value parameters.
type Header struct {
	Title    string            // e.g., "README Agent"
	Subtitle string            // e.g., "Generate comprehensive documentation..."
	Params   map[string]string // e.g., {"Category": "api"}
	Width    int               // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, subtitle string, params map[string]string) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Params:   params,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := HeaderTitleStyle.Render(h.Title)
	if h.Subtitle != "" {
		top = lipgloss.JoinVertical(lipgloss.Left, top, HeaderSubtitleStyle.Render(h.Subtitle))
	}

	content := top
	if len(h.Params) > 0 {
		// Sorted so output is stable between runs
		keys := make([]string, 0, len(h.Params))
		for k := range h.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		paramLines := make([]string, 0, len(keys))
		for _, k := range keys {
			paramLines = append(paramLines, HeaderParamKeyStyle.Render(k+":")+" "+HeaderParamValueStyle.Render(h.Params[k]))
		}

		divider := RenderHorizontalDivider(width-6, "─")
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(paramLines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
