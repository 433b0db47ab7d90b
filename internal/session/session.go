package session

import (
	"context"
	"fmt"
	"image"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/collector"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/jonathan/site-signoff/internal/signature"
	"github.com/jonathan/site-signoff/internal/types"
	"go.uber.org/zap"
)

// Renderer produces the sign-off document.
type Renderer interface {
	Render(ctx context.Context, in rendering.Input) (*rendering.Result, error)
}

// Session holds the state of a single sign-off. It is not safe for concurrent use;
// the form drives it from one goroutine.
type Session struct {
	catalog  *checklist.Catalog
	renderer Renderer
	workDir  string
	logger   *zap.Logger

	state    State
	project  types.ProjectRecord
	sections []checklist.Section
	known    map[string]bool
	toggles  *collector.Toggles
	store    *signature.Store
	result   *rendering.Result
}

// New creates a session in the SelectingType state. Transient signature files
// are written to workDir.
func New(catalog *checklist.Catalog, renderer Renderer, workDir string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		catalog:  catalog,
		renderer: renderer,
		workDir:  workDir,
		logger:   logger,
	}
	s.clear()
	return s
}

func (s *Session) clear() {
	s.state = SelectingType
	s.project = types.ProjectRecord{}
	s.sections = nil
	s.known = nil
	s.toggles = collector.NewToggles()
	s.store = signature.NewStore(s.workDir, s.logger)
	s.result = nil
}

// State returns the current stage.
func (s *Session) State() State {
	return s.state
}

// ID identifies the session in logs and transient file names.
func (s *Session) ID() string {
	return s.store.Session()
}

// Types lists the checklist types the user can choose from.
func (s *Session) Types() []string {
	return s.catalog.Types()
}

// Begin selects the checklist and records the project details, moving to
// CollectingAnswers. An unknown type or an invalid record leaves the session
// in SelectingType so the user can correct it.
func (s *Session) Begin(project types.ProjectRecord) error {
	if s.state != SelectingType {
		return &TransitionError{Action: "begin a checklist", From: s.state}
	}

	project = project.Normalize()
	sections, err := s.catalog.Sections(project.ChecklistType)
	if err != nil {
		return err
	}
	if err := project.Validate(); err != nil {
		return err
	}

	s.project = project
	s.sections = sections
	s.known = make(map[string]bool)
	for _, q := range checklist.Flatten(sections) {
		s.known[q] = true
	}
	s.state = CollectingAnswers

	s.logger.Info("Checklist started",
		zap.String("session", s.ID()),
		zap.String("type", project.ChecklistType),
		zap.String("project", project.ProjectName),
		zap.String("unit", project.UnitNumber))
	return nil
}

// Back returns to SelectingType, discarding answers and signatures.
func (s *Session) Back() error {
	if s.state != CollectingAnswers {
		return &TransitionError{Action: "go back", From: s.state}
	}
	if err := s.store.Release(); err != nil {
		s.logger.Warn("Failed to remove signature files", zap.Error(err))
	}
	project := s.project
	s.clear()
	s.project = project
	return nil
}

// Project returns the recorded project details.
func (s *Session) Project() types.ProjectRecord {
	return s.project
}

// Sections returns the sections of the selected checklist.
func (s *Session) Sections() []checklist.Section {
	return s.sections
}

// Toggle flips a question and returns its new value.
func (s *Session) Toggle(question string) (bool, error) {
	if err := s.checkQuestion("toggle a question", question); err != nil {
		return false, err
	}
	return s.toggles.Toggle(question), nil
}

// SetAnswer records an explicit answer.
func (s *Session) SetAnswer(question string, checked bool) error {
	if err := s.checkQuestion("answer a question", question); err != nil {
		return err
	}
	s.toggles.Set(question, checked)
	return nil
}

// Checked reports the current answer for question.
func (s *Session) Checked(question string) bool {
	return s.toggles.Checked(question)
}

// Answers returns the answer set in catalog order.
func (s *Session) Answers() types.AnswerSet {
	return collector.Collect(s.sections, s.toggles)
}

// SaveSignature stores the signature for role as a transient file.
// A nil or blank image clears it.
func (s *Session) SaveSignature(role signature.Role, img image.Image) error {
	if s.state != CollectingAnswers {
		return &TransitionError{Action: "save a signature", From: s.state}
	}
	_, err := s.store.Save(role, img)
	return err
}

// HasSignature reports whether a signature is stored for role.
func (s *Session) HasSignature(role signature.Role) bool {
	return s.store.Path(role) != ""
}

// Generate renders and saves the document. On success the session is Done;
// on failure it returns to CollectingAnswers so the user can retry. Transient
// signature files are removed either way, and a render error is always the
// error returned.
func (s *Session) Generate(ctx context.Context) (*rendering.Result, error) {
	if s.state != CollectingAnswers {
		return nil, &TransitionError{Action: "generate the document", From: s.state}
	}
	s.state = Rendering

	res, err := s.render(ctx)
	if relErr := s.store.Release(); relErr != nil {
		s.logger.Warn("Failed to remove signature files", zap.String("session", s.ID()), zap.Error(relErr))
	}
	if err != nil {
		s.state = CollectingAnswers
		s.logger.Error("Render failed", zap.String("session", s.ID()), zap.Error(err))
		return nil, err
	}

	s.result = res
	s.state = Done
	return res, nil
}

func (s *Session) render(ctx context.Context) (*rendering.Result, error) {
	sub, foreman, err := s.store.Load(ctx)
	if err != nil {
		return nil, &rendering.RenderError{Message: "failed to load signatures", Cause: err}
	}
	return s.renderer.Render(ctx, rendering.Input{
		Project:                s.project,
		Answers:                s.Answers(),
		Sections:               s.sections,
		SubcontractorSignature: sub,
		ForemanSignature:       foreman,
	})
}

// Result returns the saved document once the session is Done.
func (s *Session) Result() *rendering.Result {
	return s.result
}

// Reset starts a new sign-off after a document was saved.
func (s *Session) Reset() error {
	if s.state != Done {
		return &TransitionError{Action: "start a new sign-off", From: s.state}
	}
	s.clear()
	return nil
}

func (s *Session) checkQuestion(action, question string) error {
	if s.state != CollectingAnswers {
		return &TransitionError{Action: action, From: s.state}
	}
	if !s.known[question] {
		return fmt.Errorf("question %q is not part of the %s checklist", question, s.project.ChecklistType)
	}
	return nil
}
