// Package graph builds the citation graph over a bibliography: which
// articles in the set cite which other articles in the same set.
package graph

import (
	"github.com/lhartung/reviz/internal/bibliography"
)

// Edge is one directed citation: From cites To. Duplicate edges are kept;
// collapsing multiplicities is a downstream concern.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the completed citation graph. Built once per run, then handed to
// rendering and export collaborators unchanged.
type Graph struct {
	Articles []bibliography.Article
	Edges    []Edge

	// YearIndex maps every year in the inclusive min..max range to the keys
	// published that year. Years with no articles map to an empty slice,
	// so timeline layouts see a dense axis.
	YearIndex map[int][]string
}

// Article returns the article with the given key, or nil.
func (g *Graph) Article(key string) *bibliography.Article {
	for i := range g.Articles {
		if g.Articles[i].Key == key {
			return &g.Articles[i]
		}
	}
	return nil
}

// Years returns the publication year of every dated article, in article
// order. This mirrors the shape downstream drawing tools expect.
func (g *Graph) Years() []int {
	var years []int
	for _, a := range g.Articles {
		if a.Year != 0 {
			years = append(years, a.Year)
		}
	}
	return years
}

// buildYearIndex groups article keys by year over the full inclusive range
// of observed years.
func buildYearIndex(articles []bibliography.Article) map[int][]string {
	minYear, maxYear := 0, 0
	for _, a := range articles {
		if a.Year == 0 {
			continue
		}
		if minYear == 0 || a.Year < minYear {
			minYear = a.Year
		}
		if a.Year > maxYear {
			maxYear = a.Year
		}
	}

	index := make(map[int][]string)
	if minYear == 0 {
		return index
	}

	for year := minYear; year <= maxYear; year++ {
		keys := []string{}
		for _, a := range articles {
			if a.Year == year {
				keys = append(keys, a.Key)
			}
		}
		index[year] = keys
	}
	return index
}
