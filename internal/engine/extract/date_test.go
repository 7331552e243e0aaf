package extract

import (
	"testing"
	"time"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-06-10T12:30:45Z", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"2026-01-23T00:00:00+00:00", time.Date(2026, 1, 23, 0, 0, 0, 0, time.UTC)},
		// Offset shifts the calendar date once normalized to UTC.
		{"2024-03-01T01:30:00+05:00", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if err != nil {
				t.Fatalf("ParseISODate(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseISODate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseISODate_Malformed(t *testing.T) {
	for _, input := range []string{"", "2024-06-10", "June 10, 2024", "1718000000"} {
		if _, err := ParseISODate(input); err == nil {
			t.Errorf("ParseISODate(%q) = nil error, want failure", input)
		}
	}
}

func TestParseRelativeDate(t *testing.T) {
	anchor := time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)
	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"3 days ago", time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)},
		{"1 day ago", time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"2 weeks ago", time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC)},
		{"1 month ago", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{"5 hours ago", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"just now", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"Today", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"  1 Week ago ", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := ParseRelativeDate(tt.phrase, anchor)
			if !ok {
				t.Fatalf("ParseRelativeDate(%q) not recognized", tt.phrase)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseRelativeDate(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_HoursCrossMidnight(t *testing.T) {
	anchor := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)
	got, ok := ParseRelativeDate("5 hours ago", anchor)
	if !ok {
		t.Fatal("phrase not recognized")
	}
	want := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate_Unrecognized(t *testing.T) {
	anchor := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	// Never guess "today" for vocabulary we do not understand.
	for _, phrase := range []string{"", "yesterday", "3 fortnights ago", "ago", "soon", "3 days"} {
		if _, ok := ParseRelativeDate(phrase, anchor); ok {
			t.Errorf("ParseRelativeDate(%q) recognized, want ok=false", phrase)
		}
	}
}
