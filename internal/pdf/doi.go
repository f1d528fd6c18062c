// Package pdf pulls DOIs out of article PDFs to backfill bibliography
// entries that lack one.
package pdf

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiPattern matches a registered DOI as printed on an article page.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxScanPages bounds the scan; a DOI is almost always on the first page.
const maxScanPages = 3

// ScanDOI searches the first pages of a PDF for a DOI. An unreadable page
// is skipped, and a PDF without a DOI returns "" with no error.
func ScanDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxScanPages {
		pages = maxScanPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := FindDOI(text); doi != "" {
			return doi, nil
		}
	}
	return "", nil
}

// FindDOI returns the first plausible DOI in a block of text.
func FindDOI(text string) string {
	for _, candidate := range doiPattern.FindAllString(text, -1) {
		candidate = strings.TrimRight(candidate, ".,;:)")
		if plausibleDOI(candidate) {
			return candidate
		}
	}
	return ""
}

// plausibleDOI filters out truncated matches: the suffix after the slash
// must exist and the whole thing must be long enough to be a real DOI.
func plausibleDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}
