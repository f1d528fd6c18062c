package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lhartung/reviz/internal/bibliography"
	"github.com/lhartung/reviz/internal/graph"
	"github.com/lhartung/reviz/internal/match"
	"github.com/lhartung/reviz/internal/pdf"
	"github.com/lhartung/reviz/internal/storage"
	"github.com/lhartung/reviz/internal/tei"
)

var (
	buildBib            string
	buildTEIDir         string
	buildOutputDir      string
	buildNonInteractive bool
	buildOriginalKeys   bool
	buildScanPDFs       bool
)

func init() {
	buildCmd.Flags().StringVar(&buildBib, "bib", "", "Bibliography JSON export (overrides config)")
	buildCmd.Flags().StringVar(&buildTEIDir, "tei", "", "Directory of parsed TEI documents (overrides config)")
	buildCmd.Flags().StringVar(&buildOutputDir, "out", "", "Output directory (overrides config)")
	buildCmd.Flags().BoolVar(&buildNonInteractive, "non-interactive", false, "Never prompt; treat ambiguous matches as non-matches")
	buildCmd.Flags().BoolVar(&buildOriginalKeys, "original-keys", false, "Keep bibtex keys verbatim instead of hashing them")
	buildCmd.Flags().BoolVar(&buildScanPDFs, "scan-pdfs", false, "Backfill missing DOIs by scanning article PDFs")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the citation graph model from references in PDFs",
	Long: `Build the citation graph model from the bibliography and the parsed
reference lists of its articles.

Every extracted reference is compared against every other article in the
set; matches become directed edges. Ambiguous pairs are put to you unless
--non-interactive is given, in which case they count as non-matches. The
model is written to <output_dir>/graph-model.json.`,
	RunE: runBuild,
}

// BuildResult is the response for the build command.
type BuildResult struct {
	Status   string       `json:"status"`
	Articles int          `json:"articles"`
	Edges    int          `json:"edges"`
	Skipped  []graph.Skip `json:"skipped"`
	Prompts  int          `json:"prompts"`
	Path     string       `json:"path"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	if buildBib != "" {
		cfg.Bibliography = buildBib
	}
	if buildTEIDir != "" {
		cfg.TEIDir = buildTEIDir
	}
	if buildOutputDir != "" {
		cfg.OutputDir = buildOutputDir
	}
	if buildNonInteractive {
		cfg.Interactive = false
	}
	if buildOriginalKeys {
		cfg.OriginalKeys = true
	}
	if buildScanPDFs {
		cfg.ScanPDFs = true
	}

	articles, entryErrs, err := bibliography.Load(cfg.Bibliography, bibliography.LoadOptions{
		OriginalKeys: cfg.OriginalKeys,
	})
	if err != nil {
		exitWithError(ExitDataError, "loading bibliography: %v", err)
	}
	for _, e := range entryErrs {
		logger.Warn().Err(e).Msg("skipping bibliography entry")
	}
	if len(articles) == 0 {
		exitWithError(ExitDataError, "bibliography contains no usable articles")
	}

	if cfg.ScanPDFs {
		backfillDOIs(articles)
	}

	oracle := match.NewConsoleOracle(os.Stdin, os.Stderr)
	session := match.NewSession(oracle, !cfg.Interactive)

	builder := &graph.Builder{
		Source:  tei.DirSource{Dir: cfg.TEIDir},
		Session: session,
		Logger:  logger,
	}

	g, err := builder.Build(articles)
	if err != nil {
		exitWithError(ExitDataError, "building graph: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}
	modelPath := cfg.GraphPath()
	if err := storage.WriteModel(modelPath, storage.FromGraph(g)); err != nil {
		exitWithError(ExitError, "writing graph model: %v", err)
	}

	result := BuildResult{
		Status:   "built",
		Articles: len(g.Articles),
		Edges:    len(g.Edges),
		Skipped:  builder.Skipped,
		Prompts:  session.Answered(),
		Path:     modelPath,
	}
	if result.Skipped == nil {
		result.Skipped = []graph.Skip{}
	}

	if humanOutput {
		fmt.Printf("Built %s: %d articles, %d edges", modelPath, result.Articles, result.Edges)
		if len(result.Skipped) > 0 {
			fmt.Printf(", %d skipped", len(result.Skipped))
		}
		fmt.Println()
		return nil
	}
	return outputJSON(result)
}

// backfillDOIs scans the PDF of every article lacking a DOI. Scan failures
// are warnings; the build continues with whatever the bibliography had.
func backfillDOIs(articles []bibliography.Article) {
	for i := range articles {
		if articles[i].DOI != "" || articles[i].File == "" {
			continue
		}
		doi, err := pdf.ScanDOI(articles[i].File)
		if err != nil {
			logger.Warn().Err(err).Str("key", articles[i].Key).Msg("pdf scan failed")
			continue
		}
		if doi != "" {
			logger.Info().Str("key", articles[i].Key).Str("doi", doi).Msg("backfilled doi from pdf")
			articles[i].DOI = doi
		}
	}
}
