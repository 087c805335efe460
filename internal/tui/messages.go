package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/readme-agent/internal/ui"
)

// selectCategoryMsg is emitted by the sidebar when the user picks an entry
type selectCategoryMsg struct {
	id string
}

// generateDoneMsg reports the end of a generation run
type generateDoneMsg struct {
	run     int
	repoURL string
	elapsed time.Duration
	err     error
}

// notifyMsg asks the app to show a notification
type notifyMsg struct {
	notification ui.Notification
}

// notificationExpiredMsg hides the notification with the given sequence
// number, if it is still the one on screen
type notificationExpiredMsg struct {
	seq int
}

// SelectCategory returns a command that selects id as if it were chosen in
// the sidebar.
func SelectCategory(id string) tea.Cmd {
	return func() tea.Msg {
		return selectCategoryMsg{id: id}
	}
}

func notify(n ui.Notification) tea.Cmd {
	return func() tea.Msg {
		return notifyMsg{notification: n}
	}
}
