// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/rendering"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, inner), inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintChecklist outputs the sections of one checklist type with their question counts.
func (p *Printer) PrintChecklist(name string, sections []checklist.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for _, s := range sections {
		sb.WriteString(fmt.Sprintf("  • %s (%d)\n", s.Title, len(s.Questions)))
		total += len(s.Questions)
	}
	sb.WriteString(fmt.Sprintf("\nSections: %d   Questions: %d", len(sections), total))

	p.printBox(strings.ToUpper(name), sb.String())
}

// PrintDocument outputs a summary of a built sign-off document: the header
// fields, per-section pass counts and which signatures were captured.
func (p *Printer) PrintDocument(doc *rendering.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	for _, f := range doc.Metadata {
		sb.WriteString(fmt.Sprintf("%-20s %s\n", f.Label+":", f.Value))
	}
	sb.WriteString("\n")

	passed, total := 0, 0
	for _, s := range doc.Sections {
		sectionPassed := 0
		for _, item := range s.Items {
			if item.Checked {
				sectionPassed++
			}
		}
		passed += sectionPassed
		total += len(s.Items)
		sb.WriteString(fmt.Sprintf("  %d/%d  %s\n", sectionPassed, len(s.Items), s.Title))
	}
	sb.WriteString(fmt.Sprintf("\nPassed: %d of %d\n", passed, total))

	if len(doc.Unanswered) > 0 {
		sb.WriteString(fmt.Sprintf("No answer recorded: %d\n", len(doc.Unanswered)))
		count := min(len(doc.Unanswered), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", doc.Unanswered[i]))
		}
		if len(doc.Unanswered) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Unanswered)-maxItemsToShow))
		}
	}

	sb.WriteString("\n")
	for _, sig := range doc.Signatures {
		state := "blank"
		if sig.Picture != nil {
			state = "captured"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", sig.Caption, state))
	}

	p.printBox(strings.ToUpper(doc.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSaved outputs where the document was written.
func (p *Printer) PrintSaved(result *rendering.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", result.Filename))
	sb.WriteString(fmt.Sprintf("Path: %s\n", result.Path))
	sb.WriteString(fmt.Sprintf("Size: %d bytes", result.Size))

	p.printBox("DOCUMENT SAVED", sb.String())
}
