// Package match decides whether an extracted reference and a bibliography
// article denote the same publication.
package match

import (
	"regexp"
	"strings"
)

// doiPattern matches the registrant/suffix core of a DOI, e.g. 10.1234/abc-1.
var doiPattern = regexp.MustCompile(`\d\d\.\d+/\S+`)

// Surname patterns for the two shapes a bibliography author field takes.
// With commas the field is "Surname, First and Surname, First"; without,
// it is bare names joined by "and". The separator word is case-insensitive.
var (
	commaAuthorPattern = regexp.MustCompile(`(?:^|(?i:and) +)([A-Za-z\- ]+)`)
	bareAuthorPattern  = regexp.MustCompile(`([A-Za-z\-]+)(?: +(?i:and) +|$)`)
)

// ExtractDOI returns the first DOI-shaped substring of text, or "" if none.
func ExtractDOI(text string) string {
	if text == "" {
		return ""
	}
	return doiPattern.FindString(text)
}

// ExtractAuthors parses surnames out of a raw bibliography author field.
// Multi-word and hyphenated surnames survive the comma-separated form.
func ExtractAuthors(raw string) []string {
	pattern := bareAuthorPattern
	if strings.Contains(raw, ",") {
		pattern = commaAuthorPattern
	}

	var authors []string
	for _, m := range pattern.FindAllStringSubmatch(raw, -1) {
		name := strings.TrimSpace(m[1])
		if name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// NormalizeTitle prepares a title for comparison: BibTeX protection braces
// are stripped and the result is upper-cased. The stored title is untouched.
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "{", "")
	title = strings.ReplaceAll(title, "}", "")
	return strings.ToUpper(title)
}
