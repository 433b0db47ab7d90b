package rendering

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/collector"
	"github.com/jonathan/site-signoff/internal/types"
	"github.com/stretchr/testify/require"
)

func scenarioProject() types.ProjectRecord {
	return types.ProjectRecord{
		ChecklistType:     "Joinery",
		ProjectName:       "Block A",
		UnitNumber:        "12",
		InspectionDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SubcontractorName: "Acme Ltd",
		ForemanName:       "J. Smith",
	}
}

// allChecked returns an input for typeName with every question answered true.
func allChecked(t *testing.T, typeName string) Input {
	t.Helper()
	sections, err := checklist.MustDefault().Sections(typeName)
	require.NoError(t, err)

	toggles := collector.NewToggles()
	for _, q := range checklist.Flatten(sections) {
		toggles.Set(q, true)
	}

	p := scenarioProject()
	p.ChecklistType = typeName
	return Input{
		Project:  p,
		Answers:  collector.Collect(sections, toggles),
		Sections: sections,
	}
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func partNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	return names
}
