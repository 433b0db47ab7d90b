package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/site-signoff/internal/collector"
	"github.com/jonathan/site-signoff/internal/observability"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/jonathan/site-signoff/internal/schemas"
	"github.com/jonathan/site-signoff/internal/signature"
	"github.com/jonathan/site-signoff/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a sign-off sheet from a request file",
	Long: `Renders a sign-off document without the form. The request file is JSON with the
project details and answers (see 'signoff scaffold'); signatures are optional PNG or
JPEG files and are scaled to fit the signature canvas.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderInFile           string
	renderSubcontractorSig string
	renderForemanSig       string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInFile, "in", "i", "", "Path to sign-off request JSON file (required)")
	renderCmd.Flags().StringVar(&renderSubcontractorSig, "subcontractor-signature", "", "Path to subcontractor signature image (optional)")
	renderCmd.Flags().StringVar(&renderForemanSig, "foreman-signature", "", "Path to CH foreman signature image (optional)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	data, err := schemas.ValidateRequestFile(renderInFile)
	if err != nil {
		return fmt.Errorf("invalid request file: %w", err)
	}

	var req types.SignOffRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to unmarshal request JSON: %w", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load checklists: %w", err)
	}

	project, err := req.Project()
	if err != nil {
		return err
	}
	sections, err := catalog.Sections(project.ChecklistType)
	if err != nil {
		return err
	}
	if err := project.Validate(); err != nil {
		return fmt.Errorf("invalid project details: %w", err)
	}

	for _, q := range collector.Extraneous(sections, req.Answers) {
		logger.Warn("Ignoring answer for a question not in the checklist",
			zap.String("type", project.ChecklistType), zap.String("question", q))
	}
	answers := collector.FromAnswers(req.Answers)
	for _, q := range collector.Unanswered(sections, answers) {
		logger.Warn("No answer recorded, rendering as unchecked",
			zap.String("type", project.ChecklistType), zap.String("question", q))
	}

	if err := prepareOutput(); err != nil {
		return err
	}

	sub, foreman, err := signature.LoadPair(ctx, renderSubcontractorSig, renderForemanSig)
	if err != nil {
		return fmt.Errorf("failed to load signatures: %w", err)
	}

	res, err := newRenderer().Render(ctx, rendering.Input{
		Project:                project,
		Answers:                collector.Collect(sections, answers),
		Sections:               sections,
		SubcontractorSignature: sub,
		ForemanSignature:       foreman,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if cfg.Verbose {
		printer.PrintDocument(res.Document)
	}
	printer.PrintSaved(res)
	return nil
}
