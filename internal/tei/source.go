package tei

import (
	"path/filepath"
	"strings"

	"github.com/lhartung/reviz/internal/bibliography"
)

// DirSource serves per-article reference lists from a directory of TEI
// files. The PDF parsing stage names each TEI file after the PDF it came
// from: <pdf basename without extension>.tei.xml.
type DirSource struct {
	Dir string
}

// References returns the extracted reference list for an article. Articles
// without an associated PDF are reported as ErrMissingDocument, like
// articles whose TEI file is absent.
func (s DirSource) References(art bibliography.Article) ([]Reference, error) {
	if art.File == "" {
		return nil, ErrMissingDocument
	}
	return ParseFile(s.Path(art))
}

// Path returns where the TEI file for an article is expected.
func (s DirSource) Path(art bibliography.Article) string {
	base := filepath.Base(art.File)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(s.Dir, base+".tei.xml")
}
