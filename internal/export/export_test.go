package export

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/lhartung/reviz/internal/bibliography"
	"github.com/lhartung/reviz/internal/graph"
)

func sampleGraph() *graph.Graph {
	return &graph.Graph{
		Articles: []bibliography.Article{
			{Key: "saha17", Title: "Bootstrapping for Numerical Open IE", Authors: []string{"Saha", "Pal"}, Year: 2017},
			{Key: "madaan16", Title: "Numerical Relation Extraction", Authors: []string{"Madaan"}, Year: 2016},
		},
		Edges: []graph.Edge{{From: "saha17", To: "madaan16"}},
	}
}

func TestWrite_GraphML(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleGraph(), FormatGraphML); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	var doc graphmlDoc
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}

	if doc.Graph.EdgeDefault != "directed" {
		t.Errorf("edgedefault = %q", doc.Graph.EdgeDefault)
	}
	if len(doc.Graph.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(doc.Graph.Nodes))
	}
	if len(doc.Graph.Edges) != 1 || doc.Graph.Edges[0].Source != "saha17" || doc.Graph.Edges[0].Target != "madaan16" {
		t.Errorf("edges = %+v", doc.Graph.Edges)
	}
	if !strings.Contains(out, "Bootstrapping for Numerical Open IE") {
		t.Error("node title missing from output")
	}
}

func TestWrite_GEXF(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, sampleGraph(), FormatGEXF); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	var doc gexfDoc
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}

	if doc.Version != "1.2" {
		t.Errorf("version = %q", doc.Version)
	}
	if len(doc.Graph.Nodes) != 2 || doc.Graph.Nodes[0].ID != "saha17" {
		t.Errorf("nodes = %+v", doc.Graph.Nodes)
	}
	if len(doc.Graph.Edges) != 1 || doc.Graph.Edges[0].Target != "madaan16" {
		t.Errorf("edges = %+v", doc.Graph.Edges)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, sampleGraph(), "dot")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("error = %v, want ErrUnknownFormat", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown format")
	}
}

func TestWrite_EmptyGraph(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, &graph.Graph{}, FormatGraphML); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "graphml") {
		t.Error("empty graph should still produce a document")
	}
}
