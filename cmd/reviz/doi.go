package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/pdf"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <pdf>",
	Short: "Scan a PDF for its DOI",
	Long: `Scan the first pages of a PDF for a DOI.

This is the same scan the build command runs with --scan-pdfs for
bibliography entries whose export carries no DOI.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

// DOIResult is the response for the doi command.
type DOIResult struct {
	Path string `json:"path"`
	DOI  string `json:"doi"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	path := args[0]

	doi, err := pdf.ScanDOI(path)
	if err != nil {
		exitWithError(ExitError, "scanning %s: %v", path, err)
	}
	if doi == "" {
		exitWithError(ExitDataError, "no DOI found in %s", path)
	}

	if humanOutput {
		fmt.Println(doi)
		return nil
	}
	return outputJSON(DOIResult{Path: path, DOI: doi})
}
