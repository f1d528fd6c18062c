package match

import "testing"

func TestMatchAuthors(t *testing.T) {
	tests := []struct {
		name       string
		candidate  []string
		other      []string
		wantScore  int
		wantWeight int
	}{
		{
			"identical pair",
			[]string{"Smith", "Lee"},
			[]string{"Smith", "Lee"},
			6, // 5 for exact first author, 1 for fuzzy Lee
			2,
		},
		{
			"empty candidate",
			nil,
			[]string{"Smith"},
			0,
			1,
		},
		{
			"empty other",
			[]string{"Smith"},
			nil,
			0,
			1,
		},
		{
			"fuzzy first author",
			[]string{"Kowalczyk", "Lee"},
			[]string{"Kowalczyka", "Lee"},
			4, // 3 fuzzy first + 1 fuzzy Lee
			2,
		},
		{
			"swapped author order",
			[]string{"Pal", "Saha"},
			[]string{"Saha", "Pal"},
			6, // 3 for fuzzy first author, 3 for Saha == other's first
			2,
		},
		{
			"no overlap",
			[]string{"Smith", "Lee"},
			[]string{"Garcia", "Chen"},
			0,
			4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, weight := MatchAuthors(tt.candidate, tt.other)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if weight != tt.wantWeight {
				t.Errorf("totalWeight = %d, want %d", weight, tt.wantWeight)
			}
		})
	}
}

func TestMatchAuthors_FirstAuthorBranchIsExclusive(t *testing.T) {
	// The first candidate author takes only the first-author branches, never
	// the generic +1 branch, even when it appears later in the other list.
	score, _ := MatchAuthors([]string{"Lee"}, []string{"Smith", "Lee"})
	if score != 3 {
		t.Errorf("score = %d, want 3 (fuzzy first-author credit only)", score)
	}
}
