package rendering

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/site-signoff/internal/types"
)

// Extension is the file extension of rendered documents.
const Extension = ".docx"

// maxBaseBytes caps the name before the extension and any " (n)" suffix,
// keeping the full name under the common 255-byte file name limit.
const maxBaseBytes = 200

// Filename builds {checklist_type}_{project_name}_{unit_number}_{inspection_date}.docx.
// Characters that cannot appear in file names are replaced with '-'. Long
// names are shortened before the date so the date always survives.
func Filename(p types.ProjectRecord) string {
	p = p.Normalize()
	head := sanitizeFilename(fmt.Sprintf("%s_%s_%s", p.ChecklistType, p.ProjectName, p.UnitNumber))
	tail := "_" + p.DateString()
	head = truncateBytes(head, maxBaseBytes-len(tail))
	return head + tail + Extension
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// candidateName returns the n-th name tried when the first one is taken:
// "x.docx", "x (2).docx", "x (3).docx", ...
func candidateName(filename string, n int) string {
	if n <= 1 {
		return filename
	}
	base := strings.TrimSuffix(filename, Extension)
	return fmt.Sprintf("%s (%d)%s", base, n, Extension)
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 || r == 0x7f {
			return '-'
		}
		return r
	}, name)
}
