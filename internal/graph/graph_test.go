package graph

import (
	"reflect"
	"testing"

	"github.com/lhartung/reviz/internal/bibliography"
)

func TestBuildYearIndex_DenseRange(t *testing.T) {
	articles := []bibliography.Article{
		{Key: "a", Year: 2010},
		{Key: "b", Year: 2013},
		{Key: "c", Year: 2013},
	}

	index := buildYearIndex(articles)

	if len(index) != 4 {
		t.Fatalf("index covers %d years, want 4 (2010-2013)", len(index))
	}
	if !reflect.DeepEqual(index[2010], []string{"a"}) {
		t.Errorf("2010 = %v", index[2010])
	}
	if !reflect.DeepEqual(index[2013], []string{"b", "c"}) {
		t.Errorf("2013 = %v", index[2013])
	}
	// Gap years are present and empty, not absent.
	for _, year := range []int{2011, 2012} {
		keys, ok := index[year]
		if !ok {
			t.Errorf("year %d missing from index", year)
		}
		if len(keys) != 0 {
			t.Errorf("year %d = %v, want empty", year, keys)
		}
	}
}

func TestBuildYearIndex_UndatedArticlesExcluded(t *testing.T) {
	articles := []bibliography.Article{
		{Key: "a", Year: 2020},
		{Key: "undated"},
	}

	index := buildYearIndex(articles)
	if len(index) != 1 {
		t.Errorf("index = %v, want only 2020", index)
	}
	if !reflect.DeepEqual(index[2020], []string{"a"}) {
		t.Errorf("2020 = %v", index[2020])
	}
}

func TestBuildYearIndex_Empty(t *testing.T) {
	if index := buildYearIndex(nil); len(index) != 0 {
		t.Errorf("index = %v, want empty", index)
	}
}

func TestGraphArticle(t *testing.T) {
	g := &Graph{Articles: []bibliography.Article{{Key: "a", Title: "A"}}}

	if got := g.Article("a"); got == nil || got.Title != "A" {
		t.Errorf("Article(a) = %v", got)
	}
	if got := g.Article("missing"); got != nil {
		t.Errorf("Article(missing) = %v, want nil", got)
	}
}

func TestGraphYears(t *testing.T) {
	g := &Graph{Articles: []bibliography.Article{
		{Key: "a", Year: 2017},
		{Key: "b"},
		{Key: "c", Year: 2016},
	}}

	if got := g.Years(); !reflect.DeepEqual(got, []int{2017, 2016}) {
		t.Errorf("Years() = %v", got)
	}
}
