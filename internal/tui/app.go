package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/clipboard"
	"github.com/muurk/readme-agent/internal/config"
	"github.com/muurk/readme-agent/internal/generate"
	"github.com/muurk/readme-agent/internal/logging"
	"github.com/muurk/readme-agent/internal/ui"
)

// Focus identifies which part of the page receives key presses
type Focus string

const (
	FocusSidebar Focus = "sidebar"
	FocusURL     Focus = "url"
)

// Options configures a new App
type Options struct {
	Context             context.Context // Parent of every generation run
	Active              string          // Initial category, unknown ids fall back to the default
	Generator           generate.Generator
	Clipboard           clipboard.Writer
	NotificationTimeout time.Duration
}

// App is the page container: it owns the active category and routes
// messages between the sidebar, the preview pane and the notification area.
type App struct {
	Active  string
	Focus   Focus
	Sidebar Sidebar
	Preview Preview

	// Notification currently on screen, nil when none
	Notification        *ui.Notification
	NotificationTimeout time.Duration
	notifySeq           int

	// UI state
	Width    int
	Height   int
	quitting bool

	// Help
	Help help.Model
	Keys appKeyMap
}

// NewApp creates the application model
func NewApp(opts Options) App {
	active := opts.Active
	if !catalog.IsKnown(active) {
		if active != "" {
			logging.Warn("Unknown category, using default")
		}
		active = catalog.DefaultCategory
	}

	timeout := opts.NotificationTimeout
	if timeout <= 0 {
		timeout = config.DefaultNotificationTimeout
	}

	keys := newAppKeyMap()
	sidebar := NewSidebar(SelectCategory)
	sidebar.Keys = keys.Sidebar
	sidebar.OriginX = 1

	return App{
		Active:              active,
		Focus:               FocusSidebar,
		Sidebar:             sidebar,
		Preview:             NewPreview(opts.Context, active, opts.Generator, opts.Clipboard),
		NotificationTimeout: timeout,
		Help:                help.New(),
		Keys:                keys,
	}
}

// Init sets the terminal title
func (m App) Init() tea.Cmd {
	return tea.SetWindowTitle(AppName)
}

// Update handles all messages and routes them to the sidebar or preview
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.layout(), nil

	case selectCategoryMsg:
		return m.selectCategory(msg.id), nil

	case notifyMsg:
		return m.showNotification(msg.notification)

	case notificationExpiredMsg:
		if msg.seq == m.notifySeq {
			m.Notification = nil
			m = m.layout()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return m.quit()
		}
		if m.Focus == FocusURL {
			return m.updateInput(msg)
		}
		return m.updateSidebar(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.Preview, cmd = m.Preview.Update(msg)
	return m, cmd
}

// updateSidebar handles keys while the category list has focus
func (m App) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m.layout(), nil

	case key.Matches(msg, m.Keys.Focus):
		return m.focusInput()

	case key.Matches(msg, m.Keys.Generate):
		var cmd tea.Cmd
		m.Preview, cmd = m.Preview.Submit()
		return m, cmd

	case key.Matches(msg, m.Keys.Copy):
		return m, m.Preview.Copy()

	case key.Matches(msg, m.Keys.ScrollUp), key.Matches(msg, m.Keys.ScrollDown):
		var cmd tea.Cmd
		m.Preview, cmd = m.Preview.Update(msg)
		return m, cmd
	}

	return m, m.Sidebar.Update(msg, m.Active)
}

// updateInput handles keys while the URL input has focus
func (m App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Blur):
		m.Focus = FocusSidebar
		m.Preview = m.Preview.Blur()
		return m.layout(), nil

	case key.Matches(msg, m.Keys.Submit), key.Matches(msg, m.Keys.Generate):
		var cmd tea.Cmd
		m.Preview, cmd = m.Preview.Submit()
		return m, cmd
	}

	var cmd tea.Cmd
	m.Preview, cmd = m.Preview.Update(msg)
	return m, cmd
}

// updateMouse routes clicks in the sidebar column and wheel events to the document
func (m App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.X < m.Sidebar.OriginX+m.Sidebar.Width {
		return m, m.Sidebar.Update(msg, m.Active)
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.Focus != FocusURL {
		return m.focusInput()
	}

	var cmd tea.Cmd
	m.Preview, cmd = m.Preview.Update(msg)
	return m, cmd
}

func (m App) focusInput() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Focus = FocusURL
	m.Preview, cmd = m.Preview.Focus()
	return m.layout(), cmd
}

// selectCategory makes id the active category. Unknown ids are ignored
// so the active id always names a catalog entry.
func (m App) selectCategory(id string) App {
	if !catalog.IsKnown(id) {
		logging.Debug("Ignoring unknown category")
		return m
	}
	logging.LogSelection(m.Active, id)
	m.Active = id
	m.Preview = m.Preview.SetActive(id)
	return m
}

// showNotification replaces the current notification and schedules its expiry
func (m App) showNotification(n ui.Notification) (tea.Model, tea.Cmd) {
	m.notifySeq++
	m.Notification = &n
	m = m.layout()

	seq := m.notifySeq
	return m, tea.Tick(m.NotificationTimeout, func(time.Time) tea.Msg {
		return notificationExpiredMsg{seq: seq}
	})
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.Preview = m.Preview.Cancel()
	m.quitting = true
	return m, tea.Quit
}

// layout recomputes pane sizes for the current terminal and footer
func (m App) layout() App {
	if m.Width == 0 || m.Height == 0 {
		return m
	}

	m.Help.Width = m.Width - 6
	m.Sidebar.OriginY = contentTop(m.Width)

	footerLines := lipgloss.Height(m.footerText())
	height := contentHeight(m.Width, m.Height, footerLines)
	m.Sidebar.Height = height

	previewWidth := m.Width - 4 - SidebarWidth - 2
	if previewWidth < 20 {
		previewWidth = 20
	}
	m.Preview = m.Preview.SetSize(previewWidth, height)
	return m
}

// footerText is the notification, if any, above the help line
func (m App) footerText() string {
	var helpText string
	if m.Focus == FocusURL {
		helpText = m.Help.View(inputHelp(m.Keys))
	} else {
		helpText = m.Help.View(sidebarHelp(m.Keys))
	}

	if m.Notification == nil {
		return helpText
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.Notification.Render(m.Width-8),
		helpText,
	)
}

// View renders the page
func (m App) View() string {
	if m.quitting {
		return ""
	}
	if m.Width == 0 {
		return "Loading..."
	}
	if m.Width < MinTerminalWidth {
		return ui.DestructiveTitleStyle.Render(fmt.Sprintf("Terminal too narrow, need at least %d columns", MinTerminalWidth))
	}

	footer := m.footerText()
	height := contentHeight(m.Width, m.Height, lipgloss.Height(footer))

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Sidebar.View(m.Active, m.Focus == FocusSidebar),
		"  ",
		m.Preview.View(m.Focus == FocusURL),
	)
	content = lipgloss.NewStyle().MaxHeight(height).Render(content)

	return RenderApplicationContainer(content, footer, m.Width, m.Height)
}
