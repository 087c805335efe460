package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/catalog"
)

// Sidebar layout, in rows
const (
	sidebarHeaderRows = 4 // title, hint, rule, blank
	sidebarEntryRows  = 3 // name, description, spacing
)

// Sidebar lists the documentation categories.
//
// It holds no selection of its own: the active id is passed in on every
// call and a choice is reported through OnSelect. Origin fields are the
// screen position of the sidebar's top-left cell, used for mouse clicks.
//
// When Height cannot fit every entry, a window of entries is shown and
// scrolled so the active entry is always visible.
type Sidebar struct {
	Categories []catalog.Category
	OnSelect   func(id string) tea.Cmd
	Keys       sidebarKeyMap

	OriginX int
	OriginY int
	Width   int
	Height  int // rows available, 0 for unbounded
}

// NewSidebar creates a sidebar over the catalog categories
func NewSidebar(onSelect func(id string) tea.Cmd) Sidebar {
	return Sidebar{
		Categories: catalog.Categories(),
		OnSelect:   onSelect,
		Keys:       newSidebarKeyMap(),
		Width:      SidebarWidth,
	}
}

// Update maps key presses and mouse clicks to a selection command.
// It returns nil when msg does not select anything.
func (s Sidebar) Update(msg tea.Msg, active string) tea.Cmd {
	if len(s.Categories) == 0 || s.OnSelect == nil {
		return nil
	}

	idx := s.indexOf(active)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.Keys.Up):
			if idx <= 0 {
				idx = len(s.Categories) // wrap to bottom
			}
			return s.selectIndex(idx - 1)

		case key.Matches(msg, s.Keys.Down):
			if idx < 0 || idx >= len(s.Categories)-1 {
				return s.selectIndex(0) // wrap to top
			}
			return s.selectIndex(idx + 1)

		case key.Matches(msg, s.Keys.First):
			return s.selectIndex(0)

		case key.Matches(msg, s.Keys.Last):
			return s.selectIndex(len(s.Categories) - 1)

		case key.Matches(msg, s.Keys.Jump):
			n, err := strconv.Atoi(msg.String())
			if err != nil {
				return nil
			}
			return s.selectIndex(n - 1)

		case key.Matches(msg, s.Keys.Select):
			if idx < 0 {
				return s.selectIndex(0)
			}
			return s.selectIndex(idx)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if msg.X < s.OriginX || msg.X >= s.OriginX+s.Width {
			return nil
		}
		if c, ok := s.EntryAt(msg.Y-s.OriginY, active); ok {
			return s.OnSelect(c.ID)
		}
	}

	return nil
}

// EntryAt returns the category drawn at row, relative to the sidebar top,
// while active is selected. Rows outside the rendered entries miss.
func (s Sidebar) EntryAt(row int, active string) (catalog.Category, bool) {
	if row < sidebarHeaderRows || (s.Height > 0 && row >= s.Height) {
		return catalog.Category{}, false
	}
	i := (row - sidebarHeaderRows) / sidebarEntryRows
	if i >= s.visibleCount() {
		return catalog.Category{}, false
	}
	i += s.offset(active)
	if i >= len(s.Categories) {
		return catalog.Category{}, false
	}
	return s.Categories[i], true
}

// visibleCount is the number of entries that fit in Height
func (s Sidebar) visibleCount() int {
	total := len(s.Categories)
	if s.Height <= 0 {
		return total
	}
	// the last entry needs no spacing row
	n := (s.Height - sidebarHeaderRows + 1) / sidebarEntryRows
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

// offset is the index of the first visible entry: the window starts at
// the top and scrolls only as far as needed to show active.
func (s Sidebar) offset(active string) int {
	idx := s.indexOf(active)
	n := s.visibleCount()
	if idx < n {
		return 0
	}
	return idx - n + 1
}

func (s Sidebar) selectIndex(i int) tea.Cmd {
	if i < 0 || i >= len(s.Categories) {
		return nil
	}
	return s.OnSelect(s.Categories[i].ID)
}

func (s Sidebar) indexOf(id string) int {
	for i, c := range s.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// View renders the sidebar for the given active id
func (s Sidebar) View(active string, focused bool) string {
	width := s.Width
	if width <= 0 {
		width = SidebarWidth
	}
	inner := width - 2 // right border + gap

	var b strings.Builder

	titleStyle := SidebarTitleStyle
	if focused {
		titleStyle = titleStyle.Foreground(PrimaryColor)
	}
	b.WriteString(titleStyle.Render(" Documentation Types"))
	b.WriteString("\n")
	b.WriteString(EntryDescStyle.Render(" Select a documentation type to preview"))
	b.WriteString("\n")

	off, n := s.offset(active), s.visibleCount()
	rule := strings.Repeat("─", inner)
	if n < len(s.Categories) {
		pos := fmt.Sprintf(" %d-%d of %d ", off+1, off+n, len(s.Categories))
		rule = strings.Repeat("─", inner-len(pos)) + pos
	}
	b.WriteString(lipgloss.NewStyle().Foreground(SubtleColor).Render(rule))
	b.WriteString("\n\n")

	for _, c := range s.Categories[off : off+n] {
		b.WriteString(renderEntry(c, c.ID == active, inner))
		b.WriteString("\n\n")
	}

	style := lipgloss.NewStyle().
		Width(width-1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(SubtleColor)
	if s.Height > 0 {
		style = style.Height(s.Height).MaxHeight(s.Height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// renderEntry draws one category as two rows
func renderEntry(c catalog.Category, active bool, width int) string {
	nameStyle, descStyle, marker := EntryStyle, EntryDescStyle, " "
	if active {
		nameStyle, descStyle, marker = ActiveEntryStyle, ActiveEntryDescStyle, "▌"
	}

	name := nameStyle.Width(width).Render(marker + c.Icon + "  " + c.Name)
	desc := descStyle.Width(width).Render(marker + "   " + c.Description)
	return name + "\n" + desc
}
