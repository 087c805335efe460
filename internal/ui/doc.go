// Package ui provides lipgloss building blocks shared by the readme-agent
// CLI commands and the interactive TUI.
//
//   - Notification: the confirmation / validation messages shown after a
//     user action ("Copied!", "Documentation Generated!", ...)
//   - Header: a bordered banner with title, subtitle and parameters
//   - Printer: non-interactive output for the list and show commands
//
// Documents are always printed verbatim; markdown is never rendered.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("README Agent", catalog.Title("api"), nil)
//	p.PrintDocument(catalog.ContentOrFallback("api"))
package ui
