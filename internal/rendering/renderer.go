package rendering

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
	"go.uber.org/zap"
)

// Options configures a Renderer.
type Options struct {
	OutputDir string          // directory receiving finished documents
	LogoPath  string          // optional logo; a missing file is skipped
	Collision CollisionPolicy // defaults to CollisionSuffix
	Logger    *zap.Logger
}

// Input is everything a sign-off document is made from.
// A nil signature renders as a caption without an image.
type Input struct {
	Project                types.ProjectRecord
	Answers                types.AnswerSet
	Sections               []checklist.Section
	SubcontractorSignature image.Image
	ForemanSignature       image.Image
}

// Result describes a committed document.
type Result struct {
	Path     string
	Filename string
	Size     int
	Document *Document
}

// Renderer turns sign-off inputs into .docx files in an output directory.
type Renderer struct {
	opts   Options
	logger *zap.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Collision == "" {
		opts.Collision = CollisionSuffix
	}
	return &Renderer{opts: opts, logger: logger}
}

// Build assembles the document content without writing anything.
func (r *Renderer) Build(in Input) (*Document, error) {
	logo, err := r.loadLogo()
	if err != nil {
		return nil, err
	}
	doc, err := BuildDocument(in, logo)
	if err != nil {
		return nil, err
	}
	for _, q := range doc.Unanswered {
		r.logger.Debug("No answer recorded, rendering as unchecked", zap.String("question", q))
	}
	return doc, nil
}

// Render builds, serialises and saves the document. The file appears in the
// output directory only once it has been completely written; on error the
// directory is left as it was.
func (r *Renderer) Render(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Message: "render cancelled", Cause: err}
	}
	if r.opts.OutputDir == "" {
		return nil, &RenderError{Message: "no output directory configured"}
	}

	doc, err := r.Build(in)
	if err != nil {
		return nil, err
	}

	data, err := Package(doc)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Message: "render cancelled", Cause: err}
	}

	filename := Filename(in.Project)
	path, err := commit(r.opts.OutputDir, filename, data, r.opts.Collision)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Saved sign-off document",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("questions", len(doc.Questions())),
		zap.Int("unanswered", len(doc.Unanswered)))

	return &Result{Path: path, Filename: filepath.Base(path), Size: len(data), Document: doc}, nil
}

func (r *Renderer) loadLogo() ([]byte, error) {
	if r.opts.LogoPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(r.opts.LogoPath)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("Logo not found, rendering without it", zap.String("path", r.opts.LogoPath))
			return nil, nil
		}
		return nil, &RenderError{Message: fmt.Sprintf("failed to read logo %s", r.opts.LogoPath), Cause: err}
	}
	return data, nil
}
