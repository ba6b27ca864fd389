package fastaclean

import "testing"

func TestFilter(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{"nil", nil, ""},
		{"uppercase kept", []string{"ACGT"}, "ACGT"},
		{"lowercase folded", []string{"acgt"}, "ACGT"},
		{"junk dropped", []string{"AACCcxXAA", ".ef34"}, "AACCCAA"},
		{"lines concatenated in order", []string{"AC", "gt", "CG"}, "ACGTCG"},
		{"nothing survives", []string{"nnn", "123", "..."}, ""},
		{"whitespace dropped", []string{"A C\tG"}, "ACG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(Filter(tc.lines)); got != tc.want {
				t.Fatalf("Filter(%v) = %q, want %q", tc.lines, got, tc.want)
			}
		})
	}
}
