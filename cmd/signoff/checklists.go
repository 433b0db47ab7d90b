package main

import (
	"fmt"

	"github.com/jonathan/site-signoff/internal/observability"
	"github.com/spf13/cobra"
)

var checklistsCmd = &cobra.Command{
	Use:   "checklists",
	Short: "List checklist types or the questions of one type",
	Args:  cobra.NoArgs,
	RunE:  runChecklists,
}

var checklistsType string

func init() {
	checklistsCmd.Flags().StringVarP(&checklistsType, "type", "t", "", "Checklist type to show in full")

	rootCmd.AddCommand(checklistsCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runChecklists(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load checklists: %w", err)
	}
	out := cmd.OutOrStdout()

	if checklistsType == "" {
		for _, name := range catalog.Types() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	sections, err := catalog.Sections(checklistsType)
	if err != nil {
		return err
	}
	observability.NewPrinter(out).PrintChecklist(checklistsType, sections)
	for _, s := range sections {
		fmt.Fprintf(out, "\n%s\n", s.Title)
		for _, q := range s.Questions {
			fmt.Fprintf(out, "  - %s\n", q)
		}
	}
	return nil
}
