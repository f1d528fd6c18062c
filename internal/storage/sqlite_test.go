package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lhartung/reviz/internal/graph"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "graph.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func rebuiltTestDB(t *testing.T) *DB {
	t.Helper()
	db := openTestDB(t)

	m := &Model{
		Articles: []ModelArticle{
			{Key: "saha17", Title: "Bootstrapping", Author: []string{"Saha", "Pal"}, Year: 2017},
			{Key: "madaan16", Title: "Numerical RE", Author: []string{"Madaan"}, Year: 2016},
			{Key: "hoffmann10", Title: "Weak Supervision", Author: []string{"Hoffmann"}, Year: 2010},
		},
		Edges: []graph.Edge{
			{From: "saha17", To: "madaan16"},
			{From: "saha17", To: "hoffmann10"},
			{From: "madaan16", To: "hoffmann10"},
		},
	}

	articles, edges, err := db.Rebuild(m)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if articles != 3 || edges != 3 {
		t.Fatalf("Rebuild() = (%d, %d), want (3, 3)", articles, edges)
	}
	return db
}

func TestRebuildReplacesContent(t *testing.T) {
	db := rebuiltTestDB(t)

	// A second rebuild with less content must not leave stale rows behind.
	articles, edges, err := db.Rebuild(&Model{
		Articles: []ModelArticle{{Key: "only", Title: "Only", Author: []string{"One"}, Year: 2020}},
	})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if articles != 1 || edges != 0 {
		t.Errorf("Rebuild() = (%d, %d), want (1, 0)", articles, edges)
	}

	list, err := db.ListArticles(0)
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(list) != 1 || list[0].Key != "only" {
		t.Errorf("articles after rebuild = %+v", list)
	}
}

func TestListArticles(t *testing.T) {
	db := rebuiltTestDB(t)

	all, err := db.ListArticles(0)
	if err != nil {
		t.Fatalf("ListArticles(0) error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d articles, want 3", len(all))
	}
	if all[0].Key != "hoffmann10" {
		t.Errorf("first by year = %s, want hoffmann10", all[0].Key)
	}
	if !reflect.DeepEqual(all[2].Author, []string{"Saha", "Pal"}) {
		t.Errorf("authors round trip = %v", all[2].Author)
	}

	byYear, err := db.ListArticles(2016)
	if err != nil {
		t.Fatalf("ListArticles(2016) error = %v", err)
	}
	if len(byYear) != 1 || byYear[0].Key != "madaan16" {
		t.Errorf("2016 articles = %+v", byYear)
	}
}

func TestCitationCounts(t *testing.T) {
	db := rebuiltTestDB(t)

	counts, err := db.CitationCounts()
	if err != nil {
		t.Fatalf("CitationCounts() error = %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("got %d rows, want 3", len(counts))
	}
	if counts[0].Key != "hoffmann10" || counts[0].Citations != 2 {
		t.Errorf("most cited = %+v, want hoffmann10 with 2", counts[0])
	}
	if counts[2].Citations != 0 {
		t.Errorf("least cited = %+v, want 0 citations", counts[2])
	}
}

func TestYearHistogram(t *testing.T) {
	db := rebuiltTestDB(t)

	hist, err := db.YearHistogram()
	if err != nil {
		t.Fatalf("YearHistogram() error = %v", err)
	}
	want := []YearCount{{2010, 1}, {2016, 1}, {2017, 1}}
	if !reflect.DeepEqual(hist, want) {
		t.Errorf("YearHistogram() = %v, want %v", hist, want)
	}
}
