package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a reviz.yaml with default settings to the current directory.

Edit it to point at your bibliography export and TEI directory before
running 'reviz build'.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil {
		exitWithError(ExitConfigError, "%s already exists", configPath)
	}

	if err := config.Default().Save(configPath); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		cmd.Printf("Wrote %s\n", configPath)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", Path: configPath})
}
