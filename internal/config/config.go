// Package config handles run configuration for graph builds.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default file names.
const (
	ConfigFile = "reviz.yaml"
	GraphFile  = "graph-model.json"
	CacheFile  = "reviz.db"
)

// Config describes one graph-building run. Values come from reviz.yaml,
// overridable per run through REVIZ_* environment variables (a local .env
// is honored).
type Config struct {
	// Bibliography is the path to the bibliography JSON export.
	Bibliography string `yaml:"bibliography"`
	// TEIDir holds the parsed TEI documents, one per article PDF.
	TEIDir string `yaml:"tei_dir"`
	// OutputDir receives the graph model and the query cache.
	OutputDir string `yaml:"output_dir"`
	// Interactive enables operator prompts for ambiguous matches.
	Interactive bool `yaml:"interactive"`
	// OriginalKeys keeps bibtex keys verbatim instead of hashing them.
	OriginalKeys bool `yaml:"original_keys"`
	// ScanPDFs backfills missing DOIs by scanning each article's PDF.
	ScanPDFs bool `yaml:"scan_pdfs"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Bibliography: "bibliography.json",
		TEIDir:       "tei",
		OutputDir:    ".",
		Interactive:  true,
	}
}

// Load reads configuration from path, falling back to defaults if the file
// does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// GraphPath returns where the graph model is written.
func (c *Config) GraphPath() string {
	return filepath.Join(c.OutputDir, GraphFile)
}

// CachePath returns where the SQLite query cache lives.
func (c *Config) CachePath() string {
	return filepath.Join(c.OutputDir, CacheFile)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REVIZ_BIBLIOGRAPHY"); v != "" {
		cfg.Bibliography = v
	}
	if v := os.Getenv("REVIZ_TEI_DIR"); v != "" {
		cfg.TEIDir = v
	}
	if v := os.Getenv("REVIZ_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("REVIZ_INTERACTIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Interactive = b
		}
	}
}
