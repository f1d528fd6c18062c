package bibliography

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lhartung/reviz/internal/match"
)

// FlexibleString can unmarshal from either string or number JSON values.
// Bibliography exports are inconsistent about the year field.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// export mirrors the bibliography JSON export produced by the screening
// pipeline. Only the final selection is graphed.
type export struct {
	Articles []entry `json:"final selection articles"`
}

type entry struct {
	BibtexKey string         `json:"bibtex_key"`
	Title     string         `json:"title"`
	Author    string         `json:"author"`
	Year      FlexibleString `json:"year"`
	DOI       string         `json:"doi"`
	File      string         `json:"file"`
}

// LoadOptions controls bibliography loading.
type LoadOptions struct {
	// OriginalKeys keeps bibtex keys verbatim instead of hashing them.
	OriginalKeys bool
}

// Load reads a bibliography JSON export. Entries that cannot be converted
// are reported in the returned error slice and skipped; the rest load.
func Load(path string, opts LoadOptions) ([]Article, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading bibliography: %w", err)
	}
	return Parse(data, opts)
}

// Parse converts a bibliography JSON export into articles.
func Parse(data []byte, opts LoadOptions) ([]Article, []error, error) {
	var exp export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, nil, fmt.Errorf("parsing bibliography: %w", err)
	}

	var articles []Article
	var errs []error

	for i, e := range exp.Articles {
		art, err := entryToArticle(e, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i+1, e.BibtexKey, err))
			continue
		}
		articles = append(articles, art)
	}

	return articles, errs, nil
}

func entryToArticle(e entry, opts LoadOptions) (Article, error) {
	if e.BibtexKey == "" {
		return Article{}, fmt.Errorf("missing bibtex_key")
	}
	if e.Title == "" {
		return Article{}, fmt.Errorf("missing title")
	}

	key := e.BibtexKey
	if !opts.OriginalKeys {
		key = HashKey(key)
	}

	year := 0
	if e.Year != "" {
		y, err := strconv.Atoi(e.Year.String())
		if err != nil {
			return Article{}, fmt.Errorf("invalid year %q", e.Year)
		}
		year = y
	}

	return Article{
		Key:     key,
		Title:   e.Title,
		Authors: match.ExtractAuthors(e.Author),
		Year:    year,
		DOI:     e.DOI,
		File:    e.File,
	}, nil
}
