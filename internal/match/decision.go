package match

// Decision is the outcome of comparing one reference against one article.
type Decision int

const (
	// NotMatched means the pair certainly denotes different publications.
	NotMatched Decision = iota
	// Matched means the pair certainly denotes the same publication.
	Matched
	// Ambiguous means the engine cannot decide on its own; the accompanying
	// Question must be put to a human (or resolved to false in auto mode).
	Ambiguous
)

// Similarity thresholds for title comparison (percentages).
const (
	fullMatchRatio       = 90 // whole-title similarity alone settles it
	partialMatchRatio    = 95 // embedded title, backed by decent full ratio
	partialMatchFloor    = 70
	partialAmbigRatio    = 90 // embedded title, weak full ratio: ask
	partialAmbigFloor    = 60
	authorScoreThreshold = 2
)

// Question is a canonical ambiguous pair presented for disambiguation.
// Equal questions are the same question, regardless of which article pair
// produced them.
type Question struct {
	TitleA   string // normalized article title
	TitleB   string // normalized reference title
	AuthorsA []string
	AuthorsB []string
}

// questionKey is the comparable memoization key for a Question.
type questionKey struct {
	titleA, titleB     string
	authorsA, authorsB string
}

func (q Question) key() questionKey {
	return questionKey{
		titleA:   q.TitleA,
		titleB:   q.TitleB,
		authorsA: joinKey(q.AuthorsA),
		authorsB: joinKey(q.AuthorsB),
	}
}

func joinKey(names []string) string {
	key := ""
	for _, n := range names {
		key += n + "\x1f"
	}
	return key
}

// Decide compares an article against an extracted reference. Checks run in
// order and short-circuit: equal extracted DOIs settle it immediately; then
// normalized titles are compared and, when they agree, authors break the tie;
// a near-miss on titles is Ambiguous. A pair with a missing title on either
// side can never match. Decide is a pure function; resolving an Ambiguous
// result is the Session's job.
func Decide(artDOI, refDOI, artTitle, refTitle string, artAuthors, refAuthors []string) (Decision, Question) {
	doiA := ExtractDOI(artDOI)
	doiB := ExtractDOI(refDOI)
	if doiA != "" && doiB != "" && doiA == doiB {
		return Matched, Question{}
	}

	if artTitle == "" || refTitle == "" {
		return NotMatched, Question{}
	}

	cleanA := NormalizeTitle(artTitle)
	cleanB := NormalizeTitle(refTitle)
	full := Ratio(cleanA, cleanB)
	partial := PartialRatio(cleanA, cleanB)

	question := Question{TitleA: cleanA, TitleB: cleanB, AuthorsA: artAuthors, AuthorsB: refAuthors}

	switch {
	case full > fullMatchRatio || (partial > partialMatchRatio && full > partialMatchFloor):
		score, _ := MatchAuthors(artAuthors, refAuthors)
		if score >= authorScoreThreshold {
			return Matched, Question{}
		}
		return Ambiguous, question
	case partial > partialAmbigRatio && full > partialAmbigFloor:
		return Ambiguous, question
	default:
		return NotMatched, Question{}
	}
}
