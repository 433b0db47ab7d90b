package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/types"
	"github.com/spf13/cobra"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write a request file template for 'signoff render'",
	Long:  "Emits a sign-off request JSON for the given checklist type with every question unchecked and today's date.",
	Args:  cobra.NoArgs,
	RunE:  runScaffold,
}

var (
	scaffoldType    string
	scaffoldOutFile string
)

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldType, "type", "t", "", "Checklist type (required)")
	scaffoldCmd.Flags().StringVar(&scaffoldOutFile, "out", "", "Path to output JSON file (default: stdout)")

	if err := scaffoldCmd.MarkFlagRequired("type"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(scaffoldCmd)
}

// scaffoldRequest builds an empty request for one checklist type.
func scaffoldRequest(catalog *checklist.Catalog, typeName string, today time.Time) (*types.SignOffRequest, error) {
	questions, err := catalog.Questions(typeName)
	if err != nil {
		return nil, err
	}
	answers := make([]types.Answer, len(questions))
	for i, q := range questions {
		answers[i] = types.Answer{Question: q}
	}
	return &types.SignOffRequest{
		ChecklistType:  typeName,
		InspectionDate: today.Format(types.DateLayout),
		Answers:        answers,
	}, nil
}

func runScaffold(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load checklists: %w", err)
	}

	req, err := scaffoldRequest(catalog, scaffoldType, time.Now())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal request JSON: %w", err)
	}
	data = append(data, '\n')

	if scaffoldOutFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(scaffoldOutFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write request file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s request to %s\n", scaffoldType, scaffoldOutFile)
	return nil
}
