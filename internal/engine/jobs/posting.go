// Package jobs implements the job-posting domain: capturing structured
// fields from posting pages, mapping apijobs.dev enrichment results, and
// the local SQLite application tracker.
package jobs

import (
	"strings"
	"time"

	"github.com/anatolykoptev/go_hunter/internal/engine/extract"
)

// LocationType classifies where the work happens.
type LocationType string

const (
	LocationOnsite  LocationType = "onsite"
	LocationHybrid  LocationType = "hybrid"
	LocationRemote  LocationType = "remote"
	LocationUnknown LocationType = "unknown"
)

// JobPost is a structured job posting, assembled from scraped or enriched
// fields. Optional numeric fields are pointers: absent means the extraction
// found nothing, which is not the same as zero.
type JobPost struct {
	Company      string       `json:"company"`
	Title        string       `json:"title"`
	URL          string       `json:"url"`
	Location     string       `json:"location,omitempty"`
	LocationType LocationType `json:"location_type,omitempty"`
	MinYOE       *int64       `json:"min_yoe,omitempty"`
	MaxYOE       *int64       `json:"max_yoe,omitempty"`
	MinPayCents  *int64       `json:"min_pay_cents,omitempty"`
	MaxPayCents  *int64       `json:"max_pay_cents,omitempty"`
	PayUnit      string       `json:"pay_unit,omitempty"`
	Currency     string       `json:"currency,omitempty"`
	Skills       string       `json:"skills,omitempty"`   // canonical comma-separated list
	Benefits     string       `json:"benefits,omitempty"` // canonical comma-separated list
	Description  string       `json:"description,omitempty"`
	DatePosted   *time.Time   `json:"date_posted,omitempty"`
	DateRetrieved time.Time   `json:"date_retrieved"`
	SourceURL    string       `json:"source_url,omitempty"` // platform the posting came from
}

// DetectLocationType infers onsite/hybrid/remote from description text.
// "remote" wins over "hybrid" when both appear, matching how postings
// advertise ("remote or hybrid" is effectively remote-friendly).
func DetectLocationType(text string) LocationType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "remote"):
		return LocationRemote
	case strings.Contains(lower, "hybrid"):
		return LocationHybrid
	case lower == "":
		return LocationUnknown
	default:
		return LocationOnsite
	}
}

// ApplyPostingText runs the text extractors over free posting text and
// fills the fields they can derive: pay envelope (site convention: first
// amount is the upper bound), YOE envelope, and location type. Extraction
// misses leave fields absent; they never fail the capture.
func (p *JobPost) ApplyPostingText(text string) {
	if matches, err := extract.FindSalaryRange(text); err == nil {
		minC, maxC := extract.SalaryBounds(matches)
		if p.MinPayCents == nil {
			p.MinPayCents = minC
		}
		if p.MaxPayCents == nil {
			p.MaxPayCents = maxC
		}
		if len(matches) > 0 && p.PayUnit == "" {
			p.PayUnit = matches[0].Period
		}
	}

	minY, maxY := extract.ExperienceRange(text)
	if p.MinYOE == nil {
		p.MinYOE = minY
	}
	if p.MaxYOE == nil {
		p.MaxYOE = maxY
	}

	if p.LocationType == "" || p.LocationType == LocationUnknown {
		p.LocationType = DetectLocationType(text)
	}
}
