package rendering

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // logo files may be JPEG
	"image/png"
	"strings"
	"time"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/signature"
	"github.com/jonathan/site-signoff/internal/types"
)

// Marks appended to each checklist line.
const (
	PassMark = "✅"
	FailMark = "☐"
)

const (
	emuPerInch     = 914400
	logoWidth      = emuPerInch * 5 / 2 // 2.5in
	signatureWidth = emuPerInch * 2     // 2in
)

// Document is the structured content of a sign-off sheet, in output order.
type Document struct {
	Title      string
	Logo       *Picture
	Metadata   []Field
	Sections   []SectionBlock
	Signatures []SignatureBlock
	Created    time.Time

	// Unanswered lists questions that had no entry in the answer set and were
	// rendered as unchecked.
	Unanswered []string
}

// Field is a bold label followed by its value in the metadata block.
type Field struct {
	Label string
	Value string
}

// SectionBlock is a section heading and its bulleted questions.
type SectionBlock struct {
	Title string
	Items []Item
}

// Item is one checklist line.
type Item struct {
	Question string
	Checked  bool
}

// Line renders the bullet text "<question> <mark>".
func (i Item) Line() string {
	if i.Checked {
		return i.Question + " " + PassMark
	}
	return i.Question + " " + FailMark
}

// SignatureBlock is a caption with an optional signature picture.
type SignatureBlock struct {
	Caption string
	Picture *Picture
}

// Picture is an image embedded in the package.
type Picture struct {
	ID     int    // drawing object id, unique within the document
	RelID  string // relationship id referenced from document.xml
	Name   string // file name under word/media
	Data   []byte
	CX, CY int64 // display size in EMU
}

// Pictures lists embedded pictures in document order.
func (d *Document) Pictures() []*Picture {
	var out []*Picture
	if d.Logo != nil {
		out = append(out, d.Logo)
	}
	for _, s := range d.Signatures {
		if s.Picture != nil {
			out = append(out, s.Picture)
		}
	}
	return out
}

// Questions lists the rendered questions in document order.
func (d *Document) Questions() []string {
	var out []string
	for _, s := range d.Sections {
		for _, it := range s.Items {
			out = append(out, it.Question)
		}
	}
	return out
}

// BodyText renders the checklist body as plain text, one line per heading or item.
func (d *Document) BodyText() string {
	var sb strings.Builder
	for _, s := range d.Sections {
		sb.WriteString(s.Title)
		sb.WriteString("\n")
		for _, it := range s.Items {
			sb.WriteString("  • ")
			sb.WriteString(it.Line())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Title returns the heading used for a checklist type.
func Title(checklistType string) string {
	return fmt.Sprintf("%s Installation Sign-Off Sheet", checklistType)
}

// BuildDocument assembles the document content. The checklist body follows the
// order of in.Sections; answers are looked up by exact question text and a
// missing answer is rendered unchecked. logo may be nil.
func BuildDocument(in Input, logo []byte) (*Document, error) {
	p := in.Project.Normalize()

	doc := &Document{
		Title: Title(p.ChecklistType),
		Metadata: []Field{
			{Label: "Checklist Type", Value: p.ChecklistType},
			{Label: "Project Name / Block", Value: p.ProjectName},
			{Label: "Apartment / Unit", Value: p.UnitNumber},
			{Label: "Date of Inspection", Value: p.DateString()},
			{Label: "Subcontractor Name", Value: p.SubcontractorName},
			{Label: "CH Foreman", Value: p.ForemanName},
		},
		Created: p.InspectionDate,
	}

	nextID := 1
	if logo != nil {
		pic, err := logoPicture(logo, nextID)
		if err != nil {
			return nil, err
		}
		doc.Logo = pic
		nextID++
	}

	doc.Sections = buildSections(in.Sections, in.Answers, &doc.Unanswered)

	sigs := map[signature.Role]image.Image{
		signature.Subcontractor: in.SubcontractorSignature,
		signature.Foreman:       in.ForemanSignature,
	}
	for _, role := range signature.Roles {
		block := SignatureBlock{Caption: role.Caption()}
		if img := sigs[role]; img != nil {
			pic, err := signaturePicture(img, role, nextID)
			if err != nil {
				return nil, err
			}
			block.Picture = pic
			nextID++
		}
		doc.Signatures = append(doc.Signatures, block)
	}

	return doc, nil
}

func buildSections(sections []checklist.Section, answers types.AnswerSet, unanswered *[]string) []SectionBlock {
	blocks := make([]SectionBlock, 0, len(sections))
	for _, sec := range sections {
		block := SectionBlock{Title: sec.Title, Items: make([]Item, 0, len(sec.Questions))}
		for _, q := range sec.Questions {
			checked, ok := answers.Lookup(q)
			if !ok {
				*unanswered = append(*unanswered, q)
			}
			block.Items = append(block.Items, Item{Question: q, Checked: checked})
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func logoPicture(data []byte, id int) (*Picture, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &RenderError{Message: "failed to decode logo image", Cause: err}
	}
	ext := ""
	switch format {
	case "png":
		ext = "png"
	case "jpeg":
		ext = "jpeg"
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unsupported logo format %q", format)}
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, &RenderError{Message: "logo image has no pixels"}
	}
	return &Picture{
		ID:    id,
		RelID: fmt.Sprintf("rIdImg%d", id),
		Name:  "logo." + ext,
		Data:  data,
		CX:    logoWidth,
		CY:    int64(logoWidth) * int64(cfg.Height) / int64(cfg.Width),
	}, nil
}

func signaturePicture(img image.Image, role signature.Role, id int) (*Picture, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &RenderError{Message: fmt.Sprintf("%s signature has no pixels", role)}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &RenderError{Message: fmt.Sprintf("failed to encode %s signature", role), Cause: err}
	}
	return &Picture{
		ID:    id,
		RelID: fmt.Sprintf("rIdImg%d", id),
		Name:  fmt.Sprintf("signature_%s.png", role),
		Data:  buf.Bytes(),
		CX:    signatureWidth,
		CY:    int64(signatureWidth) * int64(b.Dy()) / int64(b.Dx()),
	}, nil
}
