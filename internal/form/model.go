// Package form provides the interactive terminal form that drives a sign-off
// session: project details, the checklist, two signature pads and the result.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/jonathan/site-signoff/internal/session"
	"github.com/jonathan/site-signoff/internal/signature"
	"go.uber.org/zap"
)

type step int

const (
	stepProject step = iota
	stepChecklist
	stepSignatures
	stepDone
)

// generatedMsg carries the outcome of a background Generate call.
type generatedMsg struct {
	result *rendering.Result
	err    error
}

// Model is the bubbletea model for one sign-off at a time.
type Model struct {
	ctx     context.Context
	session *session.Session
	logger  *zap.Logger
	styles  Styles
	now     func() time.Time

	step   step
	saved  []*rendering.Result
	width  int
	height int
	err    error
	busy   bool

	// project step
	types   []string
	typeIdx int
	focus   int
	inputs  []textinput.Model

	// checklist step
	questions []string
	cursor    int

	// signature step
	pads    []*signature.Pad
	active  int
	drawing int
}

// New creates a form over sess. ctx bounds document generation.
func New(ctx context.Context, sess *session.Session, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		ctx:     ctx,
		session: sess,
		logger:  logger,
		styles:  DefaultStyles(),
		now:     time.Now,
		types:   sess.Types(),
		drawing: -1,
	}
	m.inputs = newInputs()
	m.resetInputs()
	for range signature.Roles {
		m.pads = append(m.pads, signature.NewPad(padCols, padRows))
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case generatedMsg:
		return m.finishGenerate(msg), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.busy {
		return m, nil
	}

	switch m.step {
	case stepProject:
		return m.updateProject(msg)
	case stepChecklist:
		return m.updateChecklist(msg)
	case stepSignatures:
		return m.updateSignatures(msg)
	default:
		return m.updateDone(msg)
	}
}

// Saved returns the documents saved while the form ran, in order.
func (m Model) Saved() []*rendering.Result {
	return m.saved
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.step {
	case stepProject:
		body = m.viewProject()
	case stepChecklist:
		body = m.viewChecklist()
	case stepSignatures:
		body = m.viewSignatures()
	default:
		body = m.viewDone()
	}

	if m.busy {
		body += "\n" + m.styles.Muted.Render("Generating document...")
	}
	if m.err != nil {
		body += "\n" + m.styles.Error.Render(describeError(m.err))
	}
	return body
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "n":
		if err := m.session.Reset(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.resetInputs()
		for _, p := range m.pads {
			p.Clear()
		}
		m.step = stepProject
		return m, m.setFocus(0)
	case "q", "esc", "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewDone() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Success.Render("Sign-off document saved"))
	sb.WriteString("\n\n")
	if res := m.session.Result(); res != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("File:"), res.Filename))
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Label.Render("Path:"), res.Path))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("n: new sign-off • q: quit"))
	return sb.String()
}

var fieldLabels = map[string]string{
	"ChecklistType":     "Checklist Type",
	"ProjectName":       "Project Name / Block",
	"UnitNumber":        "Apartment / Unit",
	"InspectionDate":    "Date of Inspection",
	"SubcontractorName": "Subcontractor Name",
	"ForemanName":       "CH Foreman",
}

// describeError turns session errors into a message for the form footer.
func describeError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			label := fieldLabels[fe.Field()]
			if label == "" {
				label = fe.Field()
			}
			msgs = append(msgs, label+" is required")
		}
		return strings.Join(msgs, "\n")
	}
	return "Error: " + err.Error()
}
