// Package bibliography defines the article set a citation graph is built
// over and loads it from a JSON bibliography export.
package bibliography

import (
	"crypto/md5"
	"encoding/hex"
)

// Article is one bibliography entry. Immutable once loaded.
type Article struct {
	// Key is the unique identifier (bibtex key, possibly hashed).
	Key string `json:"key"`

	// Metadata
	Title   string   `json:"title"`
	Authors []string `json:"author"` // ordered surnames, first author first
	Year    int      `json:"year"`
	DOI     string   `json:"doi,omitempty"`

	// File is the path to the article's full-text PDF, empty if absent.
	File string `json:"-"`
}

// hashKeyLen is the number of hex characters kept from the key digest.
const hashKeyLen = 6

// HashKey shortens a bibtex key to the first six characters of its MD5 sum,
// avoiding characters that are unsafe in downstream graph tooling. An
// all-digit result gets an "a" suffix so the key is never purely numeric.
func HashKey(key string) string {
	sum := md5.Sum([]byte(key))
	short := hex.EncodeToString(sum[:])[:hashKeyLen]
	if allDigits(short) {
		return short + "a"
	}
	return short
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
