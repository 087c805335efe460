package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/readme-agent/internal/catalog"
)

// Printer writes styled, non-interactive output for CLI commands.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a banner
func (p *Printer) PrintHeader(title, subtitle string, params map[string]string) {
	p.Println(NewHeader(title, subtitle, params).SetWidth(p.width).Render())
}

// PrintCategories prints one line per category: id, name, description.
// The active category is marked.
func (p *Printer) PrintCategories(categories []catalog.Category, active string) {
	for _, c := range categories {
		marker := "  "
		if c.ID == active {
			marker = "▌ "
		}
		line := marker + c.Icon + " " +
			TableIDStyle.Render(c.ID) +
			TableNameStyle.Render(c.Name) +
			TableDescStyle.Render(c.Description)
		p.Println(strings.TrimRight(line, " "))
	}
}

// PrintDocument prints a document body exactly as stored.
// No styling is applied so the output can be piped.
func (p *Printer) PrintDocument(body string) {
	p.Println(body)
}

// PrintNotification prints a notification box
func (p *Printer) PrintNotification(n Notification) {
	p.Println(n.Render(p.width))
}
