package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/generate"
)

func TestNotifications(t *testing.T) {
	_, validationErr := generate.ValidateURL("  ")

	tests := []struct {
		name            string
		n               Notification
		wantTitle       string
		wantDescription string
		wantDestructive bool
	}{
		{
			name:            "copied",
			n:               CopiedNotification(),
			wantTitle:       "Copied!",
			wantDescription: "Content copied to clipboard",
		},
		{
			name:            "generated",
			n:               GeneratedNotification(),
			wantTitle:       "Documentation Generated!",
			wantDescription: "Your documentation has been successfully created.",
		},
		{
			name:            "validation",
			n:               ErrorNotification(validationErr),
			wantTitle:       "GitHub URL Required",
			wantDescription: "Please enter a valid GitHub repository URL",
			wantDestructive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.n.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", tt.n.Title, tt.wantTitle)
			}
			if tt.n.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", tt.n.Description, tt.wantDescription)
			}
			if tt.n.Destructive() != tt.wantDestructive {
				t.Errorf("Destructive() = %v, want %v", tt.n.Destructive(), tt.wantDestructive)
			}

			out := tt.n.Render(60)
			if !strings.Contains(out, tt.wantTitle) {
				t.Errorf("Render() missing title:\n%s", out)
			}
			if !strings.Contains(out, tt.wantDescription) {
				t.Errorf("Render() missing description:\n%s", out)
			}
			if w := lipgloss.Width(out); w > 60 {
				t.Errorf("Render(60) width = %d", w)
			}
		})
	}
}

func TestNotification_Markers(t *testing.T) {
	if out := CopiedNotification().Render(40); !strings.Contains(out, SuccessMarker) {
		t.Errorf("success notification should use %s:\n%s", SuccessMarker, out)
	}
	if out := ErrorNotification(generate.ErrAlreadyGenerating).Render(40); !strings.Contains(out, FailureMarker) {
		t.Errorf("destructive notification should use %s:\n%s", FailureMarker, out)
	}
}

func TestHeader_Render(t *testing.T) {
	h := NewHeader("README Agent", "Generate comprehensive documentation for your GitHub projects", map[string]string{
		"Category": "api",
		"Title":    "API Reference",
	}).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"README Agent", "Generate comprehensive", "Category:", "API Reference"} {
		if !strings.Contains(out, want) {
			t.Errorf("Header.Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Category:") > strings.Index(out, "Title:") {
		t.Error("Header params should be sorted")
	}
}

func TestPrinter_PrintCategories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintCategories(catalog.Categories(), "api")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(catalog.Categories()) {
		t.Fatalf("printed %d lines, want %d", len(lines), len(catalog.Categories()))
	}
	if !strings.HasPrefix(lines[1], "▌") || !strings.Contains(lines[1], "API Docs") {
		t.Errorf("active line should be marked: %q", lines[1])
	}
	if strings.HasPrefix(lines[0], "▌") {
		t.Errorf("inactive line should not be marked: %q", lines[0])
	}
}

func TestPrinter_PrintDocumentVerbatim(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	body := catalog.ContentOrFallback("setup")
	p.PrintDocument(body)

	if buf.String() != body+"\n" {
		t.Errorf("PrintDocument() altered the body:\n%s", buf.String())
	}
}

func TestNewPrinter_NilWriter(t *testing.T) {
	if p := NewPrinter(nil); p.out == nil {
		t.Error("NewPrinter(nil) should fall back to stdout")
	}
}
