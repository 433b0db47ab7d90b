package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/stretchr/testify/assert"
)

func TestPrintChecklist(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChecklist("Laminate Flooring", []checklist.Section{
		{Title: "Preparation", Questions: []string{"a", "b"}},
		{Title: "Finish", Questions: []string{"c"}},
	})
	output := buf.String()

	assert.Contains(t, output, "LAMINATE FLOORING")
	assert.Contains(t, output, "Preparation (2)")
	assert.Contains(t, output, "Finish (1)")
	assert.Contains(t, output, "Sections: 2   Questions: 3")
}

func TestPrintChecklist_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChecklist("Joinery", nil)

	assert.Empty(t, buf.String())
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &rendering.Document{
		Title: "Joinery Installation Sign-Off Sheet",
		Metadata: []rendering.Field{
			{Label: "Project Name / Block", Value: "Harbour View"},
		},
		Sections: []rendering.SectionBlock{
			{Title: "Doors", Items: []rendering.Item{
				{Question: "Hung?", Checked: true},
				{Question: "Closing?", Checked: false},
			}},
		},
		Signatures: []rendering.SignatureBlock{
			{Caption: "Subcontractor Signature:", Picture: &rendering.Picture{}},
			{Caption: "CH Foreman Signature:"},
		},
		Unanswered: []string{"Closing?"},
	}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "JOINERY INSTALLATION SIGN-OFF SHEET")
	assert.Contains(t, output, "Harbour View")
	assert.Contains(t, output, "1/2  Doors")
	assert.Contains(t, output, "Passed: 1 of 2")
	assert.Contains(t, output, "No answer recorded: 1")
	assert.Contains(t, output, "Subcontractor Signature: captured")
	assert.Contains(t, output, "CH Foreman Signature: blank")
}

func TestPrintDocument_TruncatesUnanswered(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &rendering.Document{
		Title:      "T",
		Unanswered: []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"},
	}

	p.PrintDocument(doc)

	assert.Contains(t, buf.String(), "... and 2 more")
	assert.NotContains(t, buf.String(), "q6")
}

func TestPrintDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocument(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSaved(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSaved(&rendering.Result{
		Path:     "/out/Harbour View - 12B.docx",
		Filename: "Harbour View - 12B.docx",
		Size:     4096,
	})
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT SAVED")
	assert.Contains(t, output, "Harbour View - 12B.docx")
	assert.Contains(t, output, "4096 bytes")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("✅", 80))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
