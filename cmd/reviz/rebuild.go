package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/storage"
)

var rebuildGraph string

func init() {
	rebuildCmd.Flags().StringVar(&rebuildGraph, "graph", "", "Graph model to load (defaults to the configured model)")
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query cache from the graph model",
	Long: `Rebuild the local SQLite query cache from the graph model.

The cache is derived data. The graph model JSON is the source of truth,
and rebuilding replaces whatever the cache held before. The list and
stats commands rebuild it implicitly, so this is mostly useful after
editing the model by hand.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status   string `json:"status"`
	Articles int    `json:"articles"`
	Edges    int    `json:"edges"`
	Path     string `json:"path"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	graphPath := rebuildGraph
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

	articles, edges, err := db.Rebuild(m)
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		fmt.Printf("Rebuilt %s: %d articles, %d edges\n", cfg.CachePath(), articles, edges)
		return nil
	}
	return outputJSON(RebuildResult{
		Status:   "rebuilt",
		Articles: articles,
		Edges:    edges,
		Path:     cfg.CachePath(),
	})
}

// openRebuiltCache loads the graph model and rebuilds the cache from it,
// so queries always reflect the current model.
func openRebuiltCache(graphPath, cachePath string) (*storage.DB, error) {
	m, err := storage.ReadModel(graphPath)
	if err != nil {
		return nil, fmt.Errorf("reading graph model: %w", err)
	}
	db, err := storage.OpenDB(cachePath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if _, _, err := db.Rebuild(m); err != nil {
		db.Close()
		return nil, fmt.Errorf("rebuilding cache: %w", err)
	}
	return db, nil
}
