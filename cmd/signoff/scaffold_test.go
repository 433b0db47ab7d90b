package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldRequest(t *testing.T) {
	catalog := checklist.MustDefault()
	today := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)

	req, err := scaffoldRequest(catalog, "Joinery", today)
	require.NoError(t, err)

	questions, err := catalog.Questions("Joinery")
	require.NoError(t, err)

	assert.Equal(t, "Joinery", req.ChecklistType)
	assert.Equal(t, "2024-03-05", req.InspectionDate)
	require.Len(t, req.Answers, len(questions))
	for i, a := range req.Answers {
		assert.Equal(t, questions[i], a.Question)
		assert.False(t, a.Checked)
	}
}

func TestScaffoldCommand_WritesFile(t *testing.T) {
	clearEnv(t)
	out := filepath.Join(t.TempDir(), "req.json")

	output, err := executeCommand(t, "scaffold", "--type", "Laminate Flooring", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote Laminate Flooring request")

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var req types.SignOffRequest
	require.NoError(t, json.Unmarshal(data, &req))
	assert.Equal(t, "Laminate Flooring", req.ChecklistType)
	assert.NotEmpty(t, req.Answers)
}

func TestScaffoldCommand_UnknownType(t *testing.T) {
	clearEnv(t)

	_, err := executeCommand(t, "scaffold", "--type", "Roofing")
	require.Error(t, err)
}
