package match

import "strings"

// fuzzyAuthorThreshold is the minimum case-insensitive Ratio for two
// surnames to count as the same author (tolerates OCR/extraction noise).
const fuzzyAuthorThreshold = 95

// MatchAuthors compares two ordered surname lists and returns a match score
// plus a normalization denominator. Agreement on the first author weighs
// most: exact first-vs-first is worth 5, fuzzy first or first found later
// is worth 3, and any other fuzzy overlap is worth 1. The denominator starts
// at the combined list length and shrinks by one per matched author; callers
// currently consult only the score.
func MatchAuthors(candidate, other []string) (score, totalWeight int) {
	totalWeight = len(candidate) + len(other)
	if len(candidate) == 0 || len(other) == 0 {
		return 0, totalWeight
	}

	for i, author := range candidate {
		switch {
		case i == 0:
			if author == other[0] {
				score += 5
				totalWeight--
			} else if fuzzyContains(other, author) {
				score += 3
				totalWeight--
			}
		case author == other[0]:
			score += 3
			totalWeight--
		case fuzzyContains(other, author):
			score++
			totalWeight--
		}
	}
	return score, totalWeight
}

// fuzzyContains reports whether any surname in list is close enough to name.
func fuzzyContains(list []string, name string) bool {
	upper := strings.ToUpper(name)
	for _, candidate := range list {
		if Ratio(upper, strings.ToUpper(candidate)) >= fuzzyAuthorThreshold {
			return true
		}
	}
	return false
}
