package extract

import (
	"errors"
	"testing"
)

func TestParsePay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"whole dollars", "85000", 8500000},
		{"with cents", "85000.50", 8500050},
		{"rounds sub-cent", "1234.567", 123457},
		{"zero", "0", 0},
		{"leading whitespace", " 1200.25", 120025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePay(tt.input)
			if err != nil {
				t.Fatalf("ParsePay(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePay_Invalid(t *testing.T) {
	// Comma grouping is a known manual-entry limitation: the form path does
	// not strip separators, so "85,000" must fail loudly, not become zero.
	for _, input := range []string{"", "abc", "85,000", "$85000", "12.3.4"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePay(input)
			if err == nil {
				t.Fatalf("ParsePay(%q) = nil error, want failure", input)
			}
			if !errors.Is(err, ErrInvalidPay) {
				t.Errorf("ParsePay(%q) error = %v, want ErrInvalidPay", input, err)
			}
		})
	}
}

func TestFormatPay(t *testing.T) {
	if got := FormatPay(nil); got != "" {
		t.Errorf("FormatPay(nil) = %q, want empty", got)
	}
	cents := int64(8500050)
	if got := FormatPay(&cents); got != "85000.50" {
		t.Errorf("FormatPay(8500050) = %q, want 85000.50", got)
	}
}

func TestFindSalaryRange(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []SalaryMatch
	}{
		{
			name: "full range",
			text: "$85,000.00/yr - $60,000.00/yr",
			want: []SalaryMatch{{85000, "yr"}, {60000, "yr"}},
		},
		{
			name: "embedded in description",
			text: "Great role. Base pay $120,000.00/yr - $85,000.00/yr plus equity.",
			want: []SalaryMatch{{120000, "yr"}, {85000, "yr"}},
		},
		{
			name: "hourly single",
			text: "Pay: $25.50/hr depending on experience",
			want: []SalaryMatch{{25.5, "hr"}},
		},
		{
			name: "no amounts",
			text: "Competitive salary and benefits",
			want: nil,
		},
		{
			name: "no digits at all",
			text: "remote-first, flexible hours",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindSalaryRange(tt.text)
			if err != nil {
				t.Fatalf("FindSalaryRange error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSalaryBounds(t *testing.T) {
	matches, err := FindSalaryRange("$85,000.00/yr - $60,000.00/yr")
	if err != nil {
		t.Fatalf("FindSalaryRange error: %v", err)
	}
	minC, maxC := SalaryBounds(matches)
	// Site convention: first occurrence is the upper bound.
	if maxC == nil || *maxC != 8500000 {
		t.Errorf("max = %v, want 8500000", maxC)
	}
	if minC == nil || *minC != 6000000 {
		t.Errorf("min = %v, want 6000000", minC)
	}
}

func TestSalaryBounds_Single(t *testing.T) {
	minC, maxC := SalaryBounds([]SalaryMatch{{90000, "yr"}})
	if minC != nil {
		t.Errorf("min = %v, want nil", minC)
	}
	if maxC == nil || *maxC != 9000000 {
		t.Errorf("max = %v, want 9000000", maxC)
	}
}

func TestSalaryBounds_Empty(t *testing.T) {
	minC, maxC := SalaryBounds(nil)
	if minC != nil || maxC != nil {
		t.Errorf("expected both nil, got min=%v max=%v", minC, maxC)
	}
}
