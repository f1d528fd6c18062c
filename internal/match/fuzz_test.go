package match

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "DEEP LEARNING FOR NLP", "DEEP LEARNING FOR NLP", 100},
		{"both empty", "", "", 100},
		{"one empty", "ABC", "", 0},
		{"disjoint", "ABCD", "WXYZ", 0},
		{"one edit", "SMITH", "SMITHE", 91},
		{"shared prefix", "ABC", "ABD", 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	a, b := "NUMERICAL RELATION EXTRACTION", "RELATION EXTRACTION WITH MINIMAL SUPERVISION"
	if Ratio(a, b) != Ratio(b, a) {
		t.Errorf("Ratio not symmetric: %d vs %d", Ratio(a, b), Ratio(b, a))
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "DEEP LEARNING", "DEEP LEARNING", 100},
		{"embedded prefix", "DEEP LEARNING", "DEEP LEARNING FOR NLP", 100},
		{"embedded middle", "LEARNING", "DEEP LEARNING FOR NLP", 100},
		{"both empty", "", "", 100},
		{"one empty", "", "ABC", 0},
		{"disjoint", "ABCD", "WXYZ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPartialRatio_EqualLengthsIsRatio(t *testing.T) {
	a, b := "SMITH", "SMYTH"
	if got, want := PartialRatio(a, b), Ratio(a, b); got != want {
		t.Errorf("PartialRatio(%q, %q) = %d, want Ratio value %d", a, b, got, want)
	}
}
