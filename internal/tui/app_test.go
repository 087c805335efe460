package tui

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/clipboard"
	"github.com/muurk/readme-agent/internal/config"
	"github.com/muurk/readme-agent/internal/generate"
	"github.com/muurk/readme-agent/internal/ui"
)

func newTestApp(t *testing.T, g generate.Generator) App {
	t.Helper()
	m := NewApp(Options{
		Context:             context.Background(),
		Active:              "readme",
		Generator:           g,
		Clipboard:           &clipboard.Recorder{},
		NotificationTimeout: 10 * time.Millisecond,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 140, Height: 50})
	return m
}

func update(m App, msg tea.Msg) (App, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(App), cmd
}

// deliver feeds every message produced by cmd back into the model
func deliver(t *testing.T, m App, cmd tea.Cmd) (App, []tea.Msg) {
	t.Helper()
	msgs := collect(t, cmd)
	for _, msg := range msgs {
		m, _ = update(m, msg)
	}
	return m, msgs
}

func TestNewApp_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		active string
		want   string
	}{
		{"empty", "", catalog.DefaultCategory},
		{"unknown", "manual", catalog.DefaultCategory},
		{"known", "guide", "guide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewApp(Options{Active: tt.active, Clipboard: &clipboard.Recorder{}, Generator: instant})
			if m.Active != tt.want {
				t.Errorf("Active = %q, want %q", m.Active, tt.want)
			}
			if m.Preview.Active() != tt.want {
				t.Errorf("Preview.Active() = %q, want %q", m.Preview.Active(), tt.want)
			}
			if m.Focus != FocusSidebar {
				t.Errorf("Focus = %q, want %q", m.Focus, FocusSidebar)
			}
			if m.NotificationTimeout != config.DefaultNotificationTimeout {
				t.Errorf("NotificationTimeout = %v, want %v", m.NotificationTimeout, config.DefaultNotificationTimeout)
			}
		})
	}
}

func TestApp_SidebarSelection(t *testing.T) {
	m := newTestApp(t, instant)

	m, cmd := update(m, keyPress("down"))
	m, _ = deliver(t, m, cmd)

	if m.Active != "api" {
		t.Fatalf("Active = %q, want %q", m.Active, "api")
	}
	if m.Preview.DisplayedText() != catalog.ContentOrFallback("api") {
		t.Error("preview should show the api document")
	}
	if !strings.Contains(m.View(), catalog.Title("api")) {
		t.Errorf("View() missing card title %q", catalog.Title("api"))
	}
}

func TestApp_MouseSelection(t *testing.T) {
	m := newTestApp(t, instant)

	row := contentTop(m.Width) + sidebarHeaderRows + 2*sidebarEntryRows
	m, cmd := update(m, click(4, row))
	m, _ = deliver(t, m, cmd)

	if m.Active != "guide" {
		t.Errorf("Active after click = %q, want %q", m.Active, "guide")
	}
}

func TestApp_UnknownSelectionIgnored(t *testing.T) {
	m := newTestApp(t, instant)

	m, _ = update(m, selectCategoryMsg{id: "manual"})
	if m.Active != "readme" {
		t.Errorf("Active = %q, want %q", m.Active, "readme")
	}
}

func TestApp_NotificationExpires(t *testing.T) {
	m := newTestApp(t, instant)

	m, cmd := update(m, notifyMsg{notification: ui.CopiedNotification()})
	if m.Notification == nil {
		t.Fatal("Notification = nil, want Copied!")
	}
	if !strings.Contains(m.View(), "Content copied to clipboard") {
		t.Error("View() should show the notification")
	}

	m, _ = deliver(t, m, cmd)
	if m.Notification != nil {
		t.Errorf("Notification = %v, want nil after expiry", m.Notification)
	}
}

func TestApp_StaleExpiryKeepsNewerNotification(t *testing.T) {
	m := newTestApp(t, instant)

	m, first := update(m, notifyMsg{notification: ui.CopiedNotification()})
	m, _ = update(m, notifyMsg{notification: ui.GeneratedNotification()})

	m, _ = deliver(t, m, first)
	if m.Notification == nil || m.Notification.Title != "Documentation Generated!" {
		t.Errorf("Notification = %v, want the newer one", m.Notification)
	}
}

func TestApp_CopyKey(t *testing.T) {
	rec := &clipboard.Recorder{}
	m := NewApp(Options{Active: "setup", Clipboard: rec, Generator: instant, NotificationTimeout: time.Millisecond})
	m, _ = update(m, tea.WindowSizeMsg{Width: 140, Height: 50})

	_, cmd := update(m, keyPress("c"))
	msgs := collect(t, cmd)
	if _, ok := findMsg[notifyMsg](msgs); !ok {
		t.Fatal("copy should notify")
	}
	if got, _ := rec.Last(); got != catalog.ContentOrFallback("setup") {
		t.Errorf("clipboard = %q, want setup content", got)
	}
}

func TestApp_GenerateFlow(t *testing.T) {
	m := newTestApp(t, instant)

	m, _ = update(m, keyPress("tab"))
	if m.Focus != FocusURL {
		t.Fatalf("Focus = %q, want %q", m.Focus, FocusURL)
	}

	m, _ = update(m, keyPress("https://github.com/acme/widgets"))
	if got := m.Preview.URLInput.Value(); got != "https://github.com/acme/widgets" {
		t.Fatalf("URL input = %q", got)
	}

	m, cmd := update(m, keyPress("enter"))
	if !m.Preview.Generating() {
		t.Fatal("enter should start generating")
	}
	if !strings.Contains(m.View(), LoadingText) {
		t.Error("View() should show the loading banner while generating")
	}

	// completion, then the notification it raises
	m, msgs := deliver(t, m, cmd)
	if _, ok := findMsg[generateDoneMsg](msgs); !ok {
		t.Fatal("no completion message")
	}
	if m.Preview.Generating() {
		t.Error("Generating() after completion = true, want false")
	}
	if m.Active != "readme" {
		t.Errorf("Active changed during generation to %q", m.Active)
	}
}

func TestApp_GenerateBlankURL(t *testing.T) {
	m := newTestApp(t, instant)

	m, cmd := update(m, keyPress("ctrl+g"))
	m, _ = deliver(t, m, cmd)

	if m.Preview.Generating() {
		t.Error("blank URL should not start generating")
	}
	if m.Notification == nil || m.Notification.Title != generate.URLRequiredTitle {
		t.Errorf("Notification = %v, want %q", m.Notification, generate.URLRequiredTitle)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	tests := []struct {
		name     string
		focusURL bool
		key      string
		wantQuit bool
	}{
		{"q in sidebar", false, "q", true},
		{"ctrl+c in sidebar", false, "ctrl+c", true},
		{"ctrl+c in input", true, "ctrl+c", true},
		{"q in input types", true, "q", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestApp(t, instant)
			if tt.focusURL {
				m, _ = update(m, keyPress("tab"))
			}

			_, cmd := update(m, keyPress(tt.key))
			_, quit := findMsg[tea.QuitMsg](collect(t, cmd))
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestApp_QuitCancelsGeneration(t *testing.T) {
	m := newTestApp(t, blocking)
	m, _ = update(m, keyPress("tab"))
	m, _ = update(m, keyPress("x"))

	m, runCmd := update(m, keyPress("enter"))
	m, _ = update(m, keyPress("ctrl+c"))

	done, ok := findMsg[generateDoneMsg](collect(t, runCmd))
	if !ok || !generate.IsCancelled(done.err) {
		t.Errorf("generation after quit = %v, want cancelled", done.err)
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestApp_BlurReturnsToSidebar(t *testing.T) {
	m := newTestApp(t, instant)
	m, _ = update(m, keyPress("tab"))
	m, _ = update(m, keyPress("esc"))

	if m.Focus != FocusSidebar {
		t.Errorf("Focus = %q, want %q", m.Focus, FocusSidebar)
	}
	if m.Preview.Focused() {
		t.Error("URL input should be blurred")
	}
}

func TestApp_View(t *testing.T) {
	m := newTestApp(t, instant)
	view := m.View()

	for _, want := range []string{AppName, AppTagline, "Documentation Types", catalog.Title("readme"), "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	narrow, _ := update(m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(narrow.View(), "too narrow") {
		t.Error("View() on a narrow terminal should ask for more columns")
	}
}

// markedLines returns the view lines carrying the active entry marker
func markedLines(view string) []string {
	var out []string
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "▌") {
			out = append(out, line)
		}
	}
	return out
}

func TestApp_SelectEveryCategory(t *testing.T) {
	for i, id := range catalog.IDs() {
		t.Run(id, func(t *testing.T) {
			m := newTestApp(t, instant)

			m, cmd := update(m, keyPress(strconv.Itoa(i+1)))
			m, _ = deliver(t, m, cmd)

			if m.Active != id {
				t.Fatalf("Active = %q, want %q", m.Active, id)
			}
			want, ok := catalog.Content(id)
			if !ok {
				t.Fatalf("Content(%q) missing", id)
			}
			if got := m.Preview.DisplayedText(); got != want {
				t.Errorf("DisplayedText() = %q, want %q", got, want)
			}

			c, _ := catalog.Lookup(id)
			marked := markedLines(m.View())
			if len(marked) != 2 {
				t.Fatalf("View() marked %d lines, want 2", len(marked))
			}
			if !strings.Contains(marked[0], c.Name) || !strings.Contains(marked[1], c.Description) {
				t.Errorf("marked lines = %q, want the %s entry", marked, c.Name)
			}
		})
	}
}

func TestApp_MarkerMovesWithSelection(t *testing.T) {
	m := newTestApp(t, instant)

	before := markedLines(m.View())
	if len(before) == 0 || !strings.Contains(before[0], "README") {
		t.Fatalf("initial marked lines = %q, want README", before)
	}

	m, cmd := update(m, keyPress("down"))
	m, _ = deliver(t, m, cmd)

	after := markedLines(m.View())
	if len(after) != 2 || !strings.Contains(after[0], "API Docs") {
		t.Errorf("marked lines after down = %q, want API Docs", after)
	}
	for _, line := range after {
		if strings.Contains(line, "README") {
			t.Errorf("README still marked: %q", line)
		}
	}
}

func TestApp_InitialViewShowsReadmeFence(t *testing.T) {
	m := newTestApp(t, instant)

	view := m.View()
	if !strings.Contains(view, "```bash") {
		t.Error("View() should show the readme install fence literally")
	}
	if !strings.Contains(view, catalog.Title("readme")) {
		t.Errorf("View() missing %q", catalog.Title("readme"))
	}
}

func TestApp_ShortTerminalKeepsActiveVisible(t *testing.T) {
	m := newTestApp(t, instant)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 24})

	if got := lipgloss.Height(m.View()); got != 24 {
		t.Errorf("View() height = %d, want 24", got)
	}

	m, cmd := update(m, keyPress("end"))
	m, _ = deliver(t, m, cmd)
	if m.Active != "changelog" {
		t.Fatalf("Active = %q, want changelog", m.Active)
	}

	view := m.View()
	if !strings.Contains(view, "Version history") {
		t.Error("View() should scroll the sidebar to the active entry")
	}
	marked := markedLines(view)
	if len(marked) != 2 || !strings.Contains(marked[0], "Changelog") {
		t.Errorf("marked lines = %q, want Changelog", marked)
	}
}

func TestApp_ClickBelowSidebarEntries(t *testing.T) {
	m := newTestApp(t, instant)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 24})

	// footer rows sit under the sidebar column
	for y := contentTop(m.Width) + m.Sidebar.Height; y < m.Height; y++ {
		_, cmd := update(m, click(4, y))
		if msg, ok := findMsg[selectCategoryMsg](collect(t, cmd)); ok {
			t.Errorf("click(4, %d) selected %q, want nothing", y, msg.id)
		}
	}
}
