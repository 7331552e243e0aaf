package extract

import "testing"

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed spacing and case", "  python, sql,Go ", "Python, Sql, Go"},
		{"single entry", "kubernetes", "Kubernetes"},
		{"already normalized", "Python, Sql, Go", "Python, Sql, Go"},
		{"only first letter touched", "postgreSQL, gRPC", "PostgreSQL, GRPC"},
		{"trailing comma keeps empty segment", "a,b,", "A, B, "},
		{"empty", "", ""},
		{"unicode first rune", "éclair, tarte", "Éclair, Tarte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeList(tt.input); got != tt.want {
				t.Errorf("NormalizeList(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeList_Idempotent(t *testing.T) {
	inputs := []string{
		"  python, sql,Go ",
		"a,b,",
		"",
		"one",
		" spaced , out , list ",
	}
	for _, s := range inputs {
		once := NormalizeList(s)
		twice := NormalizeList(once)
		if once != twice {
			t.Errorf("NormalizeList not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}
