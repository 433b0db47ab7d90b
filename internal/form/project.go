package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
)

// Input fields of the project step, in display order. Focus 0 is the
// checklist type selector; focus i selects inputs[i-1].
const (
	fieldProject = iota
	fieldUnit
	fieldDate
	fieldSubcontractor
	fieldForeman
	fieldCount
)

var inputLabels = [fieldCount]string{
	"Project Name / Block",
	"Apartment / Unit",
	"Date of Inspection",
	"Subcontractor Name",
	"CH Foreman",
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	inputs[fieldDate].CharLimit = len(types.DateLayout)
	return inputs
}

// resetInputs clears every field and defaults the inspection date to today.
func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldDate].SetValue(m.now().Format(types.DateLayout))
	m.typeIdx = 0
	m.focus = 0
}

func (m *Model) setFocus(focus int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focus = ((focus % n) + n) % n
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus-1 {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) updateProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "esc":
			return m, tea.Quit
		case "enter":
			if m.focus < len(m.inputs) {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submitProject()
		case "left", "right", " ", "space":
			if m.focus == 0 && len(m.types) > 0 {
				delta := 1
				if key.String() == "left" {
					delta = -1
				}
				m.typeIdx = (m.typeIdx + delta + len(m.types)) % len(m.types)
				return m, nil
			}
		}
	}

	if m.focus == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus-1], cmd = m.inputs[m.focus-1].Update(msg)
	return m, cmd
}

func (m Model) submitProject() (tea.Model, tea.Cmd) {
	date, err := types.ParseDate(m.inputs[fieldDate].Value())
	if err != nil {
		m.err = err
		return m, m.setFocus(fieldDate + 1)
	}

	record := types.ProjectRecord{
		ProjectName:       m.inputs[fieldProject].Value(),
		UnitNumber:        m.inputs[fieldUnit].Value(),
		InspectionDate:    date,
		SubcontractorName: m.inputs[fieldSubcontractor].Value(),
		ForemanName:       m.inputs[fieldForeman].Value(),
	}
	if len(m.types) > 0 {
		record.ChecklistType = m.types[m.typeIdx]
	}

	if err := m.session.Begin(record); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.questions = checklist.Flatten(m.session.Sections())
	m.cursor = 0
	m.step = stepChecklist
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, nil
}

func (m Model) viewProject() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Site Sign-Off"))
	sb.WriteString("\n\n")

	label := m.styles.Label
	if m.focus == 0 {
		label = m.styles.Focused
	}
	current := "(no checklists)"
	if len(m.types) > 0 {
		current = m.types[m.typeIdx]
	}
	sb.WriteString(label.Render("Checklist Type"))
	sb.WriteString(fmt.Sprintf("\n  ◀ %s ▶\n\n", current))

	for i, in := range m.inputs {
		label := m.styles.Label
		if m.focus == i+1 {
			label = m.styles.Focused
		}
		sb.WriteString(label.Render(inputLabels[i]))
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Muted.Render("tab/↑/↓: move • ←/→: change type • enter: next • esc: quit"))
	return sb.String()
}
