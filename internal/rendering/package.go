package rendering

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// partTemplates is parsed once; the templates are part of the binary.
var partTemplates = template.Must(template.New("docx").Funcs(template.FuncMap{
	"escape": EscapeXML,
}).ParseFS(templateFS, "templates/*.tmpl"))

// packageTime is stamped on every zip entry so identical documents produce identical bytes.
var packageTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// part maps a package path to the template that produces it.
type part struct {
	name     string
	template string
}

// parts in the order they are written to the package.
var parts = []part{
	{name: "[Content_Types].xml", template: "content_types.xml.tmpl"},
	{name: "_rels/.rels", template: "rels.xml.tmpl"},
	{name: "docProps/core.xml", template: "core.xml.tmpl"},
	{name: "word/document.xml", template: "document.xml.tmpl"},
	{name: "word/styles.xml", template: "styles.xml.tmpl"},
	{name: "word/numbering.xml", template: "numbering.xml.tmpl"},
	{name: "word/_rels/document.xml.rels", template: "document.xml.rels.tmpl"},
}

// Package serialises the document as a WordprocessingML (.docx) package.
// The output is a pure function of doc.
func Package(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: packageTime,
		})
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to add %s", p.name), Cause: err}
		}
		if err := partTemplates.ExecuteTemplate(w, p.template, doc); err != nil {
			return nil, &RenderError{
				Message: fmt.Sprintf("failed to write %s", p.name),
				Cause:   &TemplateError{Message: "failed to execute template " + p.template, Cause: err},
			}
		}
	}

	for _, pic := range doc.Pictures() {
		name := "word/media/" + pic.Name
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: packageTime,
		})
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to add %s", name), Cause: err}
		}
		if _, err := w.Write(pic.Data); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to write %s", name), Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalise document package", Cause: err}
	}
	return buf.Bytes(), nil
}

// DocumentXML renders only the main document part; used for inspection and tests.
func DocumentXML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := partTemplates.ExecuteTemplate(&buf, "document.xml.tmpl", doc); err != nil {
		return nil, &TemplateError{Message: "failed to execute template document.xml.tmpl", Cause: err}
	}
	return buf.Bytes(), nil
}
