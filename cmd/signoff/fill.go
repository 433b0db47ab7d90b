package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonathan/site-signoff/internal/form"
	"github.com/jonathan/site-signoff/internal/observability"
	"github.com/jonathan/site-signoff/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill in a sign-off sheet interactively",
	Long: `Opens the terminal form: choose the checklist type, enter the project details,
tick the checklist, draw both signatures with the mouse and generate the document.
Logs go to signoff.log in the work directory while the form is open.`,
	Args: cobra.NoArgs,
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, _ []string) error {
	if err := prepareOutput(); err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load checklists: %w", err)
	}

	sess := session.New(catalog, newRenderer(), cfg.WorkDir, logger)
	logger.Info("Form opened", zap.String("session", sess.ID()), zap.String("output_dir", cfg.OutputDir))

	program := tea.NewProgram(
		form.New(cmd.Context(), sess, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	model, ok := final.(form.Model)
	if !ok {
		return nil
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, res := range model.Saved() {
		printer.PrintSaved(res)
	}
	return nil
}
