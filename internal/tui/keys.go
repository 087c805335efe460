package tui

import "github.com/charmbracelet/bubbles/key"

// sidebarKeyMap defines key bindings while the sidebar has focus
type sidebarKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	First  key.Binding
	Last   key.Binding
	Jump   key.Binding // 1-8 select by position
	Select key.Binding
}

func newSidebarKeyMap() sidebarKeyMap {
	return sidebarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "jump"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

// appKeyMap defines the global key bindings
type appKeyMap struct {
	Sidebar sidebarKeyMap

	Focus      key.Binding
	Blur       key.Binding
	Generate   key.Binding
	Submit     key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Sidebar: newSidebarKeyMap(),
		Focus: key.NewBinding(
			key.WithKeys("tab", "/"),
			key.WithHelp("tab", "edit URL"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab/esc", "back to list"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// sidebarHelp is shown while the sidebar has focus
type sidebarHelp appKeyMap

// ShortHelp returns keybindings to be shown in the mini help view
func (k sidebarHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar.Up, k.Sidebar.Down, k.Focus, k.Generate, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k sidebarHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sidebar.Up, k.Sidebar.Down, k.Sidebar.First, k.Sidebar.Last, k.Sidebar.Jump},
		{k.Focus, k.Generate, k.Copy},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

// inputHelp is shown while the URL input has focus
type inputHelp appKeyMap

// ShortHelp returns keybindings to be shown in the mini help view
func (k inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Blur, k.ForceQuit}
}

// FullHelp returns keybindings for the expanded help view
func (k inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Blur, k.ForceQuit},
	}
}
