package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lhartung/reviz/internal/graph"
)

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Xmlns   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string         `xml:"defaultedgetype,attr"`
	Attributes      gexfAttributes `xml:"attributes"`
	Nodes           []gexfNode     `xml:"nodes>node"`
	Edges           []gexfEdge     `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class      string          `xml:"class,attr"`
	Attributes []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

func writeGEXF(w io.Writer, g *graph.Graph) error {
	doc := gexfDoc{
		Xmlns:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			DefaultEdgeType: "directed",
			Attributes: gexfAttributes{
				Class: "node",
				Attributes: []gexfAttribute{
					{ID: "title", Title: "title", Type: "string"},
					{ID: "authors", Title: "authors", Type: "string"},
					{ID: "year", Title: "year", Type: "integer"},
				},
			},
		},
	}

	for _, a := range g.Articles {
		doc.Graph.Nodes = append(doc.Graph.Nodes, gexfNode{
			ID:    a.Key,
			Label: a.Title,
			AttValues: []gexfAttValue{
				{For: "title", Value: a.Title},
				{For: "authors", Value: strings.Join(a.Authors, ", ")},
				{For: "year", Value: strconv.Itoa(a.Year)},
			},
		})
	}
	for i, e := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: e.From,
			Target: e.To,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing gexf header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding gexf: %w", err)
	}
	return enc.Close()
}
