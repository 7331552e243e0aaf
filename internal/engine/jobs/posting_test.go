package jobs

import (
	"testing"
)

func TestDetectLocationType(t *testing.T) {
	tests := []struct {
		text string
		want LocationType
	}{
		{"This is a fully remote position", LocationRemote},
		{"Hybrid schedule, 2 days in office", LocationHybrid},
		{"Remote or hybrid options available", LocationRemote},
		{"Work from our downtown office", LocationOnsite},
		{"", LocationUnknown},
	}
	for _, tt := range tests {
		if got := DetectLocationType(tt.text); got != tt.want {
			t.Errorf("DetectLocationType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestApplyPostingText_SalaryAndYOE(t *testing.T) {
	var post JobPost
	post.ApplyPostingText("Pay range $170,000.00/yr - $140,000.00/yr. Requires 3-5 years of experience. Fully remote.")

	if post.MinPayCents == nil || *post.MinPayCents != 14000000 {
		t.Errorf("min pay = %v, want 14000000", post.MinPayCents)
	}
	if post.MaxPayCents == nil || *post.MaxPayCents != 17000000 {
		t.Errorf("max pay = %v, want 17000000", post.MaxPayCents)
	}
	if post.PayUnit != "yr" {
		t.Errorf("pay unit = %q, want yr", post.PayUnit)
	}
	if post.MinYOE == nil || *post.MinYOE != 3 {
		t.Errorf("min yoe = %v, want 3", post.MinYOE)
	}
	if post.MaxYOE == nil || *post.MaxYOE != 5 {
		t.Errorf("max yoe = %v, want 5", post.MaxYOE)
	}
	if post.LocationType != LocationRemote {
		t.Errorf("location type = %q, want remote", post.LocationType)
	}
}

func TestApplyPostingText_NoMatches(t *testing.T) {
	var post JobPost
	post.ApplyPostingText("We are a fun team looking for passionate people.")

	if post.MinPayCents != nil || post.MaxPayCents != nil {
		t.Errorf("pay should be absent, got min=%v max=%v", post.MinPayCents, post.MaxPayCents)
	}
	if post.MinYOE != nil || post.MaxYOE != nil {
		t.Errorf("yoe should be absent, got min=%v max=%v", post.MinYOE, post.MaxYOE)
	}
	if post.PayUnit != "" {
		t.Errorf("pay unit = %q, want empty", post.PayUnit)
	}
}

func TestApplyPostingText_KeepsExistingPay(t *testing.T) {
	existing := int64(9900000)
	post := JobPost{MinPayCents: &existing, PayUnit: "year"}
	post.ApplyPostingText("Compensation: $50,000.00/yr")

	// Structured data (JSON-LD or enrichment) wins over text extraction.
	if *post.MinPayCents != 9900000 {
		t.Errorf("min pay = %d, want existing 9900000", *post.MinPayCents)
	}
	if post.PayUnit != "year" {
		t.Errorf("pay unit = %q, want existing 'year'", post.PayUnit)
	}
}
