// Package storage persists the citation graph model and maintains an
// ephemeral SQLite cache for queries over it.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lhartung/reviz/internal/bibliography"
	"github.com/lhartung/reviz/internal/graph"
)

// Model is the on-disk citation graph model consumed by downstream drawing
// and export tooling.
type Model struct {
	Years    []int            `json:"years"`
	YearArts map[int][]string `json:"year_arts"`
	Articles []ModelArticle   `json:"articles"`
	Edges    []graph.Edge     `json:"edges"`
}

// ModelArticle is one article as serialized in the model.
type ModelArticle struct {
	Title  string   `json:"title"`
	Author []string `json:"author"`
	Key    string   `json:"key"`
	Year   int      `json:"year"`
}

// FromGraph converts a completed citation graph into its model form.
func FromGraph(g *graph.Graph) *Model {
	m := &Model{
		Years:    g.Years(),
		YearArts: g.YearIndex,
		Edges:    g.Edges,
	}
	if m.Edges == nil {
		m.Edges = []graph.Edge{}
	}
	for _, a := range g.Articles {
		m.Articles = append(m.Articles, ModelArticle{
			Title:  a.Title,
			Author: a.Authors,
			Key:    a.Key,
			Year:   a.Year,
		})
	}
	return m
}

// Graph converts a model back into a graph for export collaborators.
func (m *Model) Graph() *graph.Graph {
	g := &graph.Graph{
		Edges:     m.Edges,
		YearIndex: m.YearArts,
	}
	for _, a := range m.Articles {
		g.Articles = append(g.Articles, bibliography.Article{
			Key:     a.Key,
			Title:   a.Title,
			Authors: a.Author,
			Year:    a.Year,
		})
	}
	return g
}

// WriteModel writes the graph model as indented JSON.
func WriteModel(path string, m *Model) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding graph model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing graph model: %w", err)
	}
	return nil
}

// ReadModel reads a graph model JSON file.
func ReadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing graph model: %w", err)
	}
	return &m, nil
}
