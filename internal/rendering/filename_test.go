package rendering

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFilename_Scenario(t *testing.T) {
	assert.Equal(t, "Joinery_Block A_12_2024-01-01.docx", Filename(scenarioProject()))
}

func TestFilename_ReplacesIllegalCharacters(t *testing.T) {
	p := scenarioProject()
	p.ProjectName = "Block A/B"
	p.UnitNumber = `12:3*?"<>|\`
	assert.Equal(t, "Joinery_Block A-B_12-3-------_2024-01-01.docx", Filename(p))
}

func TestFilename_TrimsWhitespace(t *testing.T) {
	p := scenarioProject()
	p.ProjectName = "  Block A "
	assert.Equal(t, "Joinery_Block A_12_2024-01-01.docx", Filename(p))
}

func TestCandidateName(t *testing.T) {
	assert.Equal(t, "x.docx", candidateName("x.docx", 1))
	assert.Equal(t, "x (2).docx", candidateName("x.docx", 2))
	assert.Equal(t, "x (10).docx", candidateName("x.docx", 10))
}

func TestFilename_LongFieldsAreShortened(t *testing.T) {
	p := scenarioProject()
	p.ProjectName = strings.Repeat("P", 120)
	p.UnitNumber = strings.Repeat("U", 120)

	name := Filename(p)
	assert.LessOrEqual(t, len(name), maxBaseBytes+len(Extension))
	assert.True(t, strings.HasPrefix(name, "Joinery_PPP"), name)
	assert.True(t, strings.HasSuffix(name, "_2024-01-01.docx"), name)
	assert.Less(t, len(candidateName(name, maxSuffix)), 255)
}

func TestFilename_ShortensAtRuneBoundary(t *testing.T) {
	p := scenarioProject()
	p.ProjectName = strings.Repeat("é", 150)

	name := Filename(p)
	assert.True(t, utf8.ValidString(name), name)
	assert.LessOrEqual(t, len(name), maxBaseBytes+len(Extension))
	assert.True(t, strings.HasSuffix(name, "_2024-01-01.docx"), name)
}

func TestTruncateBytes(t *testing.T) {
	assert.Equal(t, "abc", truncateBytes("abc", 5))
	assert.Equal(t, "ab", truncateBytes("abc", 2))
	assert.Equal(t, "a", truncateBytes("aé", 2))
	assert.Equal(t, "", truncateBytes("é", 1))
}
