package match

import "math"

// Ratio computes Ratcliff/Obershelp similarity between two strings as an
// integer percentage 0-100: twice the total length of matching blocks over
// the combined length. Two empty strings are identical.
func Ratio(a, b string) int {
	return ratioRunes([]rune(a), []rune(b))
}

// PartialRatio computes the best Ratio of the shorter string against every
// equal-length substring of the longer one. It rewards a title embedded in a
// longer one (e.g. with a trailing venue or subtitle).
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		r := ratioRunes(shorter, longer[i:i+len(shorter)])
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

func ratioRunes(a, b []rune) int {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	matched := gestaltMatches(a, b)
	return int(math.Round(200 * float64(matched) / float64(total)))
}

// gestaltMatches returns the total length of matching blocks found by
// locating the longest common contiguous substring and recursing on the
// unmatched left and right remainders.
func gestaltMatches(a, b []rune) int {
	i, j, k := longestCommonBlock(a, b)
	if k == 0 {
		return 0
	}
	return k + gestaltMatches(a[:i], b[:j]) + gestaltMatches(a[i+k:], b[j+k:])
}

// longestCommonBlock finds the longest common contiguous substring,
// preferring the earliest occurrence in a, then in b, on ties.
func longestCommonBlock(a, b []rune) (bestI, bestJ, bestK int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// lengths[j] holds the run length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestK {
					bestK = cur[j]
					bestI = i - cur[j]
					bestJ = j - cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return bestI, bestJ, bestK
}
