package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/generate"
)

// Variant selects the look of a notification
type Variant int

const (
	VariantDefault     Variant = iota // Confirmation / success
	VariantDestructive                // Validation failure or error
)

// Notification is a short message shown after a user action
type Notification struct {
	Variant     Variant
	Title       string // e.g., "Copied!"
	Description string // e.g., "Content copied to clipboard"
}

// CopiedNotification confirms a clipboard copy
func CopiedNotification() Notification {
	return Notification{
		Variant:     VariantDefault,
		Title:       "Copied!",
		Description: "Content copied to clipboard",
	}
}

// GeneratedNotification confirms a finished generation
func GeneratedNotification() Notification {
	return Notification{
		Variant:     VariantDefault,
		Title:       "Documentation Generated!",
		Description: "Your documentation has been successfully created.",
	}
}

// ErrorNotification builds a destructive notification from a generate error
func ErrorNotification(err error) Notification {
	return Notification{
		Variant:     VariantDestructive,
		Title:       generate.TitleOf(err),
		Description: generate.MessageOf(err),
	}
}

// Destructive reports whether the notification reports a failure
func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}

// Render returns the notification as a bordered box of the given width
func (n Notification) Render(width int) string {
	if width < 24 {
		width = 24
	}

	marker := SuccessMarker
	titleStyle := NotificationTitleStyle
	if n.Destructive() {
		marker = FailureMarker
		titleStyle = DestructiveTitleStyle
	}

	title := titleStyle.Render(marker + " " + n.Title)
	body := title
	if n.Description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, title, NotificationTextStyle.Render(n.Description))
	}

	return NotificationBoxStyle(n.Variant, width).Render(body)
}

// String implements fmt.Stringer
func (n Notification) String() string {
	return n.Title + ": " + n.Description
}
