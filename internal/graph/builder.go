package graph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lhartung/reviz/internal/bibliography"
	"github.com/lhartung/reviz/internal/match"
	"github.com/lhartung/reviz/internal/tei"
)

// ReferenceSource provides the parsed reference list for an article.
// tei.DirSource is the production implementation.
type ReferenceSource interface {
	References(art bibliography.Article) ([]tei.Reference, error)
}

// Skip records an article whose outgoing edges could not be built. Skips are
// recoverable: the rest of the graph still builds.
type Skip struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Builder constructs a citation graph from a bibliography and a reference
// source. Ambiguous matches are resolved through the session, which may
// block on operator input in interactive mode.
type Builder struct {
	Source  ReferenceSource
	Session *match.Session
	Logger  zerolog.Logger

	// Skipped collects articles without usable parsed documents. Populated
	// during Build.
	Skipped []Skip
}

// Build runs the matching pass and returns the completed graph. Only the
// finished graph is published; a missing or empty document for one article
// never aborts the run.
func (b *Builder) Build(articles []bibliography.Article) (*Graph, error) {
	if b.Source == nil {
		return nil, fmt.Errorf("no reference source configured")
	}
	if b.Session == nil {
		return nil, fmt.Errorf("no match session configured")
	}

	g := &Graph{
		Articles:  articles,
		YearIndex: buildYearIndex(articles),
	}

	for _, source := range articles {
		refs, err := b.Source.References(source)
		if err != nil {
			if errors.Is(err, tei.ErrMissingDocument) || errors.Is(err, tei.ErrEmptyDocument) {
				b.skip(source, err)
				continue
			}
			return nil, fmt.Errorf("references for %s: %w", source.Key, err)
		}

		b.Logger.Debug().Str("key", source.Key).Int("references", len(refs)).Msg("processing article")

		for _, ref := range refs {
			for _, target := range articles {
				// An article cannot cite itself.
				if target.Key == source.Key || target.Title == source.Title {
					continue
				}

				if b.Session.Matches(target.DOI, ref.DOI, target.Title, ref.Title, target.Authors, ref.Authors) {
					g.Edges = append(g.Edges, Edge{From: source.Key, To: target.Key})
					// First match wins; remaining candidates are not ranked.
					break
				}
			}
		}
	}

	return g, nil
}

func (b *Builder) skip(art bibliography.Article, err error) {
	reason := "missing parsed document"
	if errors.Is(err, tei.ErrEmptyDocument) {
		reason = "empty parsed document"
	}
	b.Skipped = append(b.Skipped, Skip{Key: art.Key, Title: art.Title, Reason: reason})
	b.Logger.Warn().Str("key", art.Key).Str("title", art.Title).Msg(reason)
}
