package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/storage"
)

var (
	listYear  int
	listGraph string
)

func init() {
	listCmd.Flags().IntVar(&listYear, "year", 0, "Only list articles published in this year")
	listCmd.Flags().StringVar(&listGraph, "graph", "", "Graph model to load (defaults to the configured model)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the articles in the citation graph",
	Long: `List the articles in the graph model, ordered by year and key.

Examples:
  reviz list
  reviz list --year 2017 --human`,
	RunE: runList,
}

// ListResult is the response for the list command.
type ListResult struct {
	Articles []storage.ModelArticle `json:"articles"`
	Count    int                    `json:"count"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	graphPath := listGraph
	if graphPath == "" {
		graphPath = cfg.GraphPath()
	}

	db, err := openRebuiltCache(graphPath, cfg.CachePath())
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	defer db.Close()

	articles, err := db.ListArticles(listYear)
	if err != nil {
		exitWithError(ExitError, "listing articles: %v", err)
	}

	if humanOutput {
		if len(articles) == 0 {
			fmt.Println("No articles found")
			return nil
		}
		for _, a := range articles {
			fmt.Printf("%-10s %4d  %s\n", a.Key, a.Year, truncateString(a.Title, 70))
			if len(a.Author) > 0 {
				fmt.Printf("                 %s\n", strings.Join(a.Author, ", "))
			}
		}
		fmt.Printf("\n%d article(s)\n", len(articles))
		return nil
	}
	if articles == nil {
		articles = []storage.ModelArticle{}
	}
	return outputJSON(ListResult{Articles: articles, Count: len(articles)})
}
