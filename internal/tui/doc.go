// Package tui implements the interactive documentation preview.
//
// The page is a single Bubble Tea program following the Elm architecture:
//   - Sidebar: the documentation categories. It keeps no selection of its
//     own and reports choices through selectCategoryMsg.
//   - Preview: the GitHub URL form, the mock generate action and a
//     scrollable card with the active document.
//   - App: the page container. It owns the active category, keyboard
//     focus and the notification area.
//
// All screens share RenderApplicationContainer for the header, content and
// help footer.
//
// # Usage Example
//
//	app := tui.NewApp(tui.Options{Active: "readme"})
//	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Generation
//
// Submitting a non-blank URL moves the generate state from Idle to
// Generating and runs the generator in a command. Its completion message
// carries the run number; only the current run may return the state to
// Idle and raise the "Documentation Generated!" notification. Quitting
// cancels the run's context.
//
// # Key Bindings
//
//   - Sidebar: ↑/↓ or j/k select, 1-8 jump, tab edit URL, ctrl+g generate,
//     c copy, pgup/pgdn scroll, ? help, q quit
//   - URL input: enter generate, tab/esc back to list, ctrl+c quit
package tui
