package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "DOI: 10.1038/nature12373 published 2013", "10.1038/nature12373"},
		{"trailing punctuation", "see 10.1145/3292500.3330919.", "10.1145/3292500.3330919"},
		{"doi url", "https://doi.org/10.1016/j.cell.2020.01.021", "10.1016/j.cell.2020.01.021"},
		{"no doi", "Volume 12, Issue 3, pages 45-67", ""},
		{"truncated", "10.1038/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.input); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanDOI_MissingFile(t *testing.T) {
	if _, err := ScanDOI("does-not-exist.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
