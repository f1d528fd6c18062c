package main

import (
	"path/filepath"
	"testing"

	"github.com/lhartung/reviz/internal/graph"
	"github.com/lhartung/reviz/internal/storage"
)

func TestOpenRebuiltCache(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "graph-model.json")
	cachePath := filepath.Join(dir, "reviz.db")

	m := &storage.Model{
		Years:    []int{2016, 2017},
		YearArts: map[int][]string{2016: {"madaan16"}, 2017: {"saha17"}},
		Articles: []storage.ModelArticle{
			{Key: "madaan16", Title: "Numerical Relation Extraction", Author: []string{"Madaan"}, Year: 2016},
			{Key: "saha17", Title: "Bootstrapping for Numerical Open IE", Author: []string{"Saha", "Pal"}, Year: 2017},
		},
		Edges: []graph.Edge{{From: "saha17", To: "madaan16"}},
	}
	if err := storage.WriteModel(modelPath, m); err != nil {
		t.Fatalf("WriteModel: %v", err)
	}

	db, err := openRebuiltCache(modelPath, cachePath)
	if err != nil {
		t.Fatalf("openRebuiltCache: %v", err)
	}
	defer db.Close()

	articles, err := db.ListArticles(0)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Key != "madaan16" {
		t.Errorf("first article = %s, want madaan16 (year order)", articles[0].Key)
	}
}

func TestOpenRebuiltCache_MissingModel(t *testing.T) {
	dir := t.TempDir()

	_, err := openRebuiltCache(filepath.Join(dir, "nope.json"), filepath.Join(dir, "reviz.db"))
	if err == nil {
		t.Fatal("expected error for missing graph model")
	}
}
