package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lhartung/reviz/internal/graph"
)

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Xmlns   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type graphmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

func writeGraphML(w io.Writer, g *graph.Graph) error {
	doc := graphmlDoc{
		Xmlns: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: "title", For: "node", AttrName: "title", AttrType: "string"},
			{ID: "authors", For: "node", AttrName: "authors", AttrType: "string"},
			{ID: "year", For: "node", AttrName: "year", AttrType: "int"},
		},
		Graph: graphmlGraph{ID: "citations", EdgeDefault: "directed"},
	}

	for _, a := range g.Articles {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{
			ID: a.Key,
			Data: []graphmlData{
				{Key: "title", Value: a.Title},
				{Key: "authors", Value: strings.Join(a.Authors, ", ")},
				{Key: "year", Value: strconv.Itoa(a.Year)},
			},
		})
	}
	for _, e := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{Source: e.From, Target: e.To})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing graphml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding graphml: %w", err)
	}
	return enc.Close()
}
