package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/storage"
)

var (
	statsTop   int
	statsGraph string
)

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "How many most-cited articles to show")
	statsCmd.Flags().StringVar(&statsGraph, "graph", "", "Graph model to load (defaults to the configured model)")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show citation and publication statistics",
	Long: `Show the most cited articles and the publication-year histogram
for the current graph model.`,
	RunE: runStats,
}

// StatsResult is the response for the stats command.
type StatsResult struct {
	Articles  int                     `json:"articles"`
	Edges     int                     `json:"edges"`
	MostCited []storage.CitationCount `json:"most_cited"`
	Years     []storage.YearCount     `json:"years"`
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	graphPath := statsGraph
	if graphPath == "" {
		graphPath = cfg.GraphPath()
	}

	m, err := storage.ReadModel(graphPath)
	if err != nil {
		exitWithError(ExitDataError, "reading graph model: %v", err)
	}

	db, err := storage.OpenDB(cfg.CachePath())
	if err != nil {
		exitWithError(ExitError, "opening cache: %v", err)
	}
	defer db.Close()
	if _, _, err := db.Rebuild(m); err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	counts, err := db.CitationCounts()
	if err != nil {
		exitWithError(ExitError, "querying citation counts: %v", err)
	}
	years, err := db.YearHistogram()
	if err != nil {
		exitWithError(ExitError, "querying year histogram: %v", err)
	}

	top := counts
	if statsTop > 0 && len(top) > statsTop {
		top = top[:statsTop]
	}

	if humanOutput {
		fmt.Printf("Articles: %d\nEdges:    %d\n", len(m.Articles), len(m.Edges))
		if len(top) > 0 {
			fmt.Println("\nMost cited:")
			for _, c := range top {
				fmt.Printf("  %3d  %-10s %s\n", c.Citations, c.Key, truncateString(c.Title, 60))
			}
		}
		if len(years) > 0 {
			fmt.Println("\nPer year:")
			for _, y := range years {
				fmt.Printf("  %d  %d\n", y.Year, y.Articles)
			}
		}
		return nil
	}
	if top == nil {
		top = []storage.CitationCount{}
	}
	if years == nil {
		years = []storage.YearCount{}
	}
	return outputJSON(StatsResult{
		Articles:  len(m.Articles),
		Edges:     len(m.Edges),
		MostCited: top,
		Years:     years,
	})
}
