// Package main provides the reviz CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath points at the run configuration file.
var configPath string

// logger writes structured progress and warnings to stderr, keeping stdout
// free for command output.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reviz",
	Short: "Citation graph builder for systematic literature reviews",
	Long: `reviz builds a citation graph from a bibliography and the parsed
full texts of its articles.

Given a bibliography JSON export and a directory of TEI documents (one per
article PDF), it determines which articles in the set cite which other
articles in the same set. Ambiguous matches are resolved interactively;
fully automated runs treat them as non-matches rather than guessing.

The graph model is written as JSON for downstream drawing tools and can be
exported as GraphML or GEXF. An ephemeral SQLite cache serves queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the run configuration file")
	rootCmd.Version = Version
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
