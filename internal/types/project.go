// Package types provides type definitions for structured data used throughout the sign-off system.
package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format used for inspection dates in files and filenames.
const DateLayout = "2006-01-02"

// ProjectRecord holds the project and personnel details entered before the checklist.
type ProjectRecord struct {
	ChecklistType     string    `json:"checklist_type" validate:"required"`
	ProjectName       string    `json:"project_name" validate:"required"`
	UnitNumber        string    `json:"unit_number" validate:"required"`
	InspectionDate    time.Time `json:"inspection_date" validate:"required"`
	SubcontractorName string    `json:"subcontractor_name" validate:"required"`
	ForemanName       string    `json:"foreman_name" validate:"required"`
}

// Normalize returns a copy with surrounding whitespace removed from every text field
// and the inspection date truncated to a calendar day.
func (p ProjectRecord) Normalize() ProjectRecord {
	p.ChecklistType = strings.TrimSpace(p.ChecklistType)
	p.ProjectName = strings.TrimSpace(p.ProjectName)
	p.UnitNumber = strings.TrimSpace(p.UnitNumber)
	p.SubcontractorName = strings.TrimSpace(p.SubcontractorName)
	p.ForemanName = strings.TrimSpace(p.ForemanName)
	if !p.InspectionDate.IsZero() {
		y, m, d := p.InspectionDate.Date()
		p.InspectionDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return p
}

// Validate validates the ProjectRecord using the validator.
// Blank text fields and a missing inspection date are rejected.
func (p *ProjectRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(p.Normalize())
}

// DateString formats the inspection date as YYYY-MM-DD.
func (p ProjectRecord) DateString() string {
	return p.InspectionDate.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD inspection date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid inspection date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}
