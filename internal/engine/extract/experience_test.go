package extract

import "testing"

func TestExperienceRange(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin int64
		wantMax int64 // -1 means absent
		none    bool
	}{
		{
			name:    "range plus higher mention",
			text:    "Requires 3-5 years of experience, prefer 7+ years in the specific stack",
			wantMin: 3,
			wantMax: 7,
		},
		{
			name:    "single value is a floor",
			text:    "at least 5 years of Go",
			wantMin: 5,
			wantMax: -1,
		},
		{
			name:    "plus suffix",
			text:    "We want 10+ years building distributed systems",
			wantMin: 10,
			wantMax: -1,
		},
		{
			name:    "dash range",
			text:    "Ideal candidate: 2-4 years in backend roles",
			wantMin: 2,
			wantMax: 4,
		},
		{
			name:    "scattered mentions",
			text:    "minimum 2 years required; 6 years with Kubernetes is a strong plus",
			wantMin: 2,
			wantMax: 6,
		},
		{name: "no mentions", text: "Senior engineer, competitive pay", none: true},
		{name: "no digits", text: "many years of experience", none: true},
		{name: "empty", text: "", none: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minY, maxY := ExperienceRange(tt.text)
			if tt.none {
				if minY != nil || maxY != nil {
					t.Fatalf("expected no result, got min=%v max=%v", minY, maxY)
				}
				return
			}
			if minY == nil || *minY != tt.wantMin {
				t.Errorf("min = %v, want %d", minY, tt.wantMin)
			}
			if tt.wantMax == -1 {
				if maxY != nil {
					t.Errorf("max = %d, want absent", *maxY)
				}
			} else if maxY == nil || *maxY != tt.wantMax {
				t.Errorf("max = %v, want %d", maxY, tt.wantMax)
			}
		})
	}
}
