package form

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/jonathan/site-signoff/internal/signature"
)

// Pad grid size in terminal cells. Cells are about twice as tall as they are
// wide, so 48x9 keeps roughly the canvas aspect ratio.
const (
	padCols = 48
	padRows = 9
)

// Signature step layout: a title line, a help line and a blank line, then
// for each pad a caption line, a bordered box and a blank line.
const (
	sigHeaderLines = 3
	sigBlockLines  = padRows + 4
)

// padOrigin returns the screen cell of pad i's top-left drawing cell.
func padOrigin(i int) (x, y int) {
	return 1, sigHeaderLines + i*sigBlockLines + 2
}

func (m Model) updateSignatures(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			m.active = (m.active + 1) % len(m.pads)
		case "c":
			m.pads[m.active].Clear()
		case "esc":
			m.err = nil
			m.step = stepChecklist
		case "enter":
			return m.generate()
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		for i, p := range m.pads {
			ox, oy := padOrigin(i)
			if p.Begin(msg.X-ox, msg.Y-oy) {
				m.active = i
				m.drawing = i
				return
			}
		}
	case tea.MouseActionMotion:
		if m.drawing >= 0 {
			ox, oy := padOrigin(m.drawing)
			m.pads[m.drawing].Extend(msg.X-ox, msg.Y-oy)
		}
	case tea.MouseActionRelease:
		if m.drawing >= 0 {
			m.pads[m.drawing].End()
			m.drawing = -1
		}
	}
}

// generate hands the current pads to the session and renders in the background.
func (m Model) generate() (tea.Model, tea.Cmd) {
	for i, role := range signature.Roles {
		if err := m.session.SaveSignature(role, signature.Capture(m.pads[i])); err != nil {
			m.err = err
			return m, nil
		}
	}
	m.err = nil
	m.busy = true
	return m, generateCmd(m.ctx, m.session.Generate)
}

func generateCmd(ctx context.Context, generate func(context.Context) (*rendering.Result, error)) tea.Cmd {
	return func() tea.Msg {
		res, err := generate(ctx)
		return generatedMsg{result: res, err: err}
	}
}

func (m Model) finishGenerate(msg generatedMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.err = msg.err
		return m
	}
	m.err = nil
	m.saved = append(m.saved, msg.result)
	m.step = stepDone
	return m
}

func (m Model) viewSignatures() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Signatures"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("drag to sign • tab: switch pad • c: clear • enter: generate • esc: back"))
	sb.WriteString("\n\n")

	for i, role := range signature.Roles {
		caption := m.styles.Label
		box := m.styles.Pad
		if i == m.active {
			caption = m.styles.Focused
			box = m.styles.PadActive
		}
		sb.WriteString(caption.Render(role.Caption()))
		sb.WriteString("\n")
		sb.WriteString(box.Render(padCells(m.pads[i])))
		sb.WriteString("\n\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func padCells(p *signature.Pad) string {
	rows := p.Cells()
	lines := make([]string, len(rows))
	for r, row := range rows {
		var sb strings.Builder
		for _, inked := range row {
			if inked {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}
