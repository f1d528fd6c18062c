// Package tei reads reference lists out of TEI documents produced by the
// PDF parsing stage.
package tei

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Reference is one citation entry extracted from a document's reference
// list. Absent title or DOI are empty strings.
type Reference struct {
	Title   string
	DOI     string
	Authors []string // surnames in document order
}

var (
	// ErrMissingDocument indicates no parsed document exists for an article.
	ErrMissingDocument = errors.New("tei document not found")
	// ErrEmptyDocument indicates the PDF parse produced a failure sentinel
	// instead of content.
	ErrEmptyDocument = errors.New("tei document is empty")
)

// Failure sentinels the PDF parsing stage writes in place of TEI content.
var failureSentinels = []string{
	"[NO_BLOCKS] PDF parsing resulted in empty content",
	"[BAD_INPUT_DATA] PDF to XML conversion failed with error code: 1",
}

// biblStruct mirrors the subset of a TEI biblStruct we need. The first title
// descendant, the DOI idno, and every author surname.
type biblStruct struct {
	Titles []string `xml:"analytic>title"`
	Idnos  []idno   `xml:"analytic>idno"`

	MonogrTitles []string `xml:"monogr>title"`
	MonogrIdnos  []idno   `xml:"monogr>idno"`
	DirectIdnos  []idno   `xml:"idno"`

	AnalyticSurnames []string `xml:"analytic>author>persName>surname"`
	MonogrSurnames   []string `xml:"monogr>author>persName>surname"`
}

type idno struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type listBibl struct {
	Entries []biblStruct `xml:"text>back>div>listBibl>biblStruct"`
}

// ParseFile reads a TEI file and returns its extracted references.
// Sentinel content is reported as ErrEmptyDocument.
func ParseFile(path string) ([]Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingDocument
		}
		return nil, fmt.Errorf("reading tei file: %w", err)
	}
	return Parse(data)
}

// Parse extracts the reference list from TEI content.
func Parse(data []byte) ([]Reference, error) {
	content := strings.TrimSpace(string(data))
	for _, sentinel := range failureSentinels {
		if content == sentinel {
			return nil, ErrEmptyDocument
		}
	}

	var doc listBibl
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing tei: %w", err)
	}

	refs := make([]Reference, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		refs = append(refs, entry.toReference())
	}
	return refs, nil
}

func (b biblStruct) toReference() Reference {
	idnos := append(append(b.Idnos, b.MonogrIdnos...), b.DirectIdnos...)
	ref := Reference{
		Title: firstNonEmpty(append(b.Titles, b.MonogrTitles...)),
		DOI:   firstDOI(idnos),
	}

	for _, s := range append(b.AnalyticSurnames, b.MonogrSurnames...) {
		s = strings.TrimSpace(s)
		if s != "" {
			ref.Authors = append(ref.Authors, s)
		}
	}
	return ref
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstDOI(idnos []idno) string {
	for _, id := range idnos {
		if strings.EqualFold(id.Type, "doi") {
			return strings.TrimSpace(id.Value)
		}
	}
	return ""
}
