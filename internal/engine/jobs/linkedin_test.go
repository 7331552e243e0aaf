package jobs

import (
	"strings"
	"testing"
	"time"
)

func TestExtractJobID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/view/4335742219/?alternateChannel=search", "4335742219"},
		{"https://www.linkedin.com/jobs/view/golang-developer-at-ceipal-4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/search/?keywords=golang", ""},
		{"https://example.com/careers/123", ""},
	}
	for _, tt := range tests {
		if got := ExtractJobID(tt.url); got != tt.want {
			t.Errorf("ExtractJobID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestJobViewURL(t *testing.T) {
	got := JobViewURL("4335742219")
	want := "https://www.linkedin.com/jobs/view/4335742219"
	if got != want {
		t.Errorf("JobViewURL = %q, want %q", got, want)
	}
}

const jsonLDFixture = `<html><head>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"JobPosting",
 "title":"Senior Go Engineer",
 "description":"Build distributed systems. Requires at least 4 years of Go. Fully remote.",
 "datePosted":"2024-06-01T08:00:00Z",
 "hiringOrganization":{"@type":"Organization","name":"Acme Corp"},
 "jobLocation":{"@type":"Place","address":{"@type":"PostalAddress",
   "addressLocality":"","addressRegion":"Remote","addressCountry":"USA"}},
 "baseSalary":{"@type":"MonetaryAmount","currency":"USD",
   "value":{"@type":"QuantitativeValue","minValue":140000,"maxValue":180000,"unitText":"YEAR"}}}
</script>
</head><body></body></html>`

func TestParsePostingHTML_JSONLD(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	post, err := parsePostingHTML(jsonLDFixture, "https://www.linkedin.com/jobs/view/111", now)
	if err != nil {
		t.Fatalf("parsePostingHTML error: %v", err)
	}

	if post.Title != "Senior Go Engineer" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Company != "Acme Corp" {
		t.Errorf("company = %q", post.Company)
	}
	if post.Location != "Remote, USA" {
		t.Errorf("location = %q, want 'Remote, USA'", post.Location)
	}
	if post.Currency != "USD" {
		t.Errorf("currency = %q", post.Currency)
	}
	if post.PayUnit != "year" {
		t.Errorf("pay unit = %q, want 'year'", post.PayUnit)
	}
	if post.MinPayCents == nil || *post.MinPayCents != 14000000 {
		t.Errorf("min pay = %v, want 14000000", post.MinPayCents)
	}
	if post.MaxPayCents == nil || *post.MaxPayCents != 18000000 {
		t.Errorf("max pay = %v, want 18000000", post.MaxPayCents)
	}
	if post.DatePosted == nil || !post.DatePosted.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date posted = %v, want 2024-06-01 midnight UTC", post.DatePosted)
	}
	// Description text feeds the extractors: "4 years" and "remote".
	if post.MinYOE == nil || *post.MinYOE != 4 {
		t.Errorf("min yoe = %v, want 4", post.MinYOE)
	}
	if post.LocationType != LocationRemote {
		t.Errorf("location type = %q, want remote", post.LocationType)
	}
	if !strings.Contains(post.Description, "distributed systems") {
		t.Errorf("description = %q, missing body text", post.Description)
	}
}

const topCardFixture = `<html><body>
<div class="top-card-layout__entity-info">
  <h1 class="top-card-layout__title">Backend Developer</h1>
  <h4 class="top-card-layout__second-subline">
    <div class="topcard__flavor-row">
      <span class="topcard__flavor"><a href="https://www.linkedin.com/company/initech">Initech</a></span>
      <span class="topcard__flavor topcard__flavor--bullet">Austin, Texas, United States</span>
    </div>
    <span class="posted-time-ago__text">3 days ago</span>
  </h4>
</div>
<div class="show-more-less-html__markup">
  <p>We need someone with at least 5 years of backend experience. Hybrid schedule.</p>
</div>
</body></html>`

func TestParsePostingHTML_TopCard(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	post, err := parsePostingHTML(topCardFixture, "https://www.linkedin.com/jobs/view/222", now)
	if err != nil {
		t.Fatalf("parsePostingHTML error: %v", err)
	}

	if post.Title != "Backend Developer" {
		t.Errorf("title = %q", post.Title)
	}
	if post.Company != "Initech" {
		t.Errorf("company = %q", post.Company)
	}
	if post.Location != "Austin, Texas, United States" {
		t.Errorf("location = %q", post.Location)
	}
	if post.DatePosted == nil || !post.DatePosted.Equal(time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date posted = %v, want 2024-06-07 midnight UTC", post.DatePosted)
	}
	if post.MinYOE == nil || *post.MinYOE != 5 {
		t.Errorf("min yoe = %v, want 5", post.MinYOE)
	}
	if post.MaxYOE != nil {
		t.Errorf("max yoe = %v, want absent", post.MaxYOE)
	}
	if post.LocationType != LocationHybrid {
		t.Errorf("location type = %q, want hybrid", post.LocationType)
	}
}

func TestParsePostingHTML_NoPosting(t *testing.T) {
	_, err := parsePostingHTML("<html><body><p>Page not found</p></body></html>",
		"https://www.linkedin.com/jobs/view/999", time.Now())
	if err == nil {
		t.Error("expected error for page with no posting")
	}
}

func TestExtractJSONLD(t *testing.T) {
	if got := extractJSONLD(jsonLDFixture); !strings.Contains(got, `"title":"Senior Go Engineer"`) {
		t.Errorf("extractJSONLD = %q, want the JobPosting block", got)
	}
	if got := extractJSONLD("<html><body>no structured data</body></html>"); got != "" {
		t.Errorf("extractJSONLD = %q, want empty", got)
	}
}
