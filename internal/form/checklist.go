package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonathan/site-signoff/internal/rendering"
)

func (m Model) updateChecklist(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.questions)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if len(m.questions) == 0 {
			return m, nil
		}
		if _, err := m.session.Toggle(m.questions[m.cursor]); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
	case "enter", "tab":
		m.err = nil
		m.step = stepSignatures
	case "esc":
		if err := m.session.Back(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.step = stepProject
		return m, m.setFocus(0)
	}
	return m, nil
}

func (m Model) viewChecklist() string {
	project := m.session.Project()

	var lines []string
	cursorLine := 0
	q := 0
	for _, s := range m.session.Sections() {
		lines = append(lines, "", m.styles.Section.Render(s.Title))
		for _, question := range s.Questions {
			mark := rendering.FailMark
			if m.session.Checked(question) {
				mark = rendering.PassMark
			}
			line := "  " + mark + " " + question
			if q == m.cursor {
				cursorLine = len(lines)
				line = m.styles.Focused.Render("> " + mark + " " + question)
			}
			lines = append(lines, line)
			q++
		}
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(rendering.Title(project.ChecklistType)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(project.ProjectName + " • " + project.UnitNumber + " • " + project.DateString()))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(window(lines, cursorLine, m.height-6), "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("↑/↓: move • space: toggle • enter: signatures • esc: back"))
	return sb.String()
}

// window returns at most size lines of lines, keeping line focus visible.
// A non-positive size returns every line.
func window(lines []string, focus, size int) []string {
	if size <= 0 || len(lines) <= size {
		return lines
	}
	start := focus - size/2
	if start < 0 {
		start = 0
	}
	if start+size > len(lines) {
		start = len(lines) - size
	}
	return lines[start : start+size]
}
