package types

// SignOffRequest is the file format accepted by the non-interactive render command.
type SignOffRequest struct {
	ChecklistType     string   `json:"checklist_type"`
	ProjectName       string   `json:"project_name"`
	UnitNumber        string   `json:"unit_number"`
	InspectionDate    string   `json:"inspection_date"`
	SubcontractorName string   `json:"subcontractor_name"`
	ForemanName       string   `json:"foreman_name"`
	Answers           []Answer `json:"answers"`
}

// Project converts the request header into a normalized ProjectRecord.
func (r *SignOffRequest) Project() (ProjectRecord, error) {
	date, err := ParseDate(r.InspectionDate)
	if err != nil {
		return ProjectRecord{}, err
	}
	return ProjectRecord{
		ChecklistType:     r.ChecklistType,
		ProjectName:       r.ProjectName,
		UnitNumber:        r.UnitNumber,
		InspectionDate:    date,
		SubcontractorName: r.SubcontractorName,
		ForemanName:       r.ForemanName,
	}.Normalize(), nil
}
