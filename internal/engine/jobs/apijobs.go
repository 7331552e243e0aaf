package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go_hunter/internal/engine"
	"github.com/anatolykoptev/go_hunter/internal/engine/extract"
)

// apijobs.dev job search endpoint.
// https://apijobs.dev/documentation/api/openapi.html
const defaultAPIJobsURL = "https://api.apijobs.dev/v1/job/search"

// APIJobsHit is one job hit from an apijobs.dev search response. These are
// machine-generated payloads: the formats are guaranteed, so mapping
// failures indicate an upstream contract violation and surface loudly.
type APIJobsHit struct {
	ID                           string   `json:"id"`
	Title                        string   `json:"title"`
	EmploymentType               string   `json:"employment_type"`
	WorkplaceType                string   `json:"workplace_type"`
	HiringOrganizationName       string   `json:"hiring_organization_name"`
	Country                      string   `json:"country"`
	Region                       string   `json:"region"`
	City                         string   `json:"city"`
	BaseSalaryCurrency           string   `json:"base_salary_currency"`
	BaseSalaryMinValue           *float64 `json:"base_salary_min_value"`
	BaseSalaryMaxValue           *float64 `json:"base_salary_max_value"`
	BaseSalaryUnit               string   `json:"base_salary_unit"`
	ExperienceRequirementsMonths *int64   `json:"experience_requirements_months"`
	SkillsRequirements           []string `json:"skills_requirements"`
	Website                      string   `json:"website"`
	URL                          string   `json:"url"`
	PublishedAt                  string   `json:"published_at"`
}

type apiJobsResponse struct {
	Hits []APIJobsHit `json:"hits"`
}

// MapHit converts an apijobs.dev hit into a JobPost: experience months
// become rounded years (a floor, no max), salary values become cents, the
// location fragments collapse into one display string, and the published
// timestamp is parsed strictly.
func MapHit(hit APIJobsHit, now time.Time) (JobPost, error) {
	post := JobPost{
		Company:       hit.HiringOrganizationName,
		Title:         hit.Title,
		URL:           hit.URL,
		Location:      extract.FormatLocation(hit.City, hit.Region, hit.Country),
		LocationType:  mapWorkplaceType(hit.WorkplaceType),
		PayUnit:       strings.ToLower(hit.BaseSalaryUnit),
		Currency:      hit.BaseSalaryCurrency,
		Skills:        extract.NormalizeList(strings.Join(hit.SkillsRequirements, ",")),
		SourceURL:     hit.Website,
		DateRetrieved: now.UTC(),
	}

	if hit.ExperienceRequirementsMonths != nil {
		years := int64(math.Round(float64(*hit.ExperienceRequirementsMonths) / 12.0))
		post.MinYOE = &years
	}
	if hit.BaseSalaryMinValue != nil {
		c := extract.Cents(*hit.BaseSalaryMinValue)
		post.MinPayCents = &c
	}
	if hit.BaseSalaryMaxValue != nil {
		c := extract.Cents(*hit.BaseSalaryMaxValue)
		post.MaxPayCents = &c
	}

	if hit.PublishedAt != "" {
		t, err := extract.ParseISODate(hit.PublishedAt)
		if err != nil {
			return JobPost{}, fmt.Errorf("apijobs hit %s: %w", hit.ID, err)
		}
		post.DatePosted = &t
	}

	return post, nil
}

// mapWorkplaceType normalizes apijobs workplace_type ("remote", "On-site",
// "hybrid") to a LocationType.
func mapWorkplaceType(s string) LocationType {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "remote":
		return LocationRemote
	case "hybrid":
		return LocationHybrid
	case "onsite":
		return LocationOnsite
	default:
		return LocationUnknown
	}
}

// SearchAPIJobs queries apijobs.dev and maps the hits to JobPosts.
// Requires an API key in the engine config.
func SearchAPIJobs(ctx context.Context, query, location string, limit int) ([]JobPost, error) {
	if engine.Cfg.APIJobsKey == "" {
		return nil, fmt.Errorf("apijobs: APIJOBS_API_KEY not configured")
	}
	engine.IncrAPIJobsRequests()

	if limit <= 0 || limit > 50 {
		limit = 10
	}
	payload := map[string]any{"q": query, "size": limit}
	if location != "" {
		payload["location"] = location
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := engine.Cfg.APIJobsURL
	if endpoint == "" {
		endpoint = defaultAPIJobsURL
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", engine.Cfg.APIJobsKey)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		engine.IncrAPIJobsErrors()
		return nil, fmt.Errorf("apijobs search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		engine.IncrAPIJobsErrors()
		return nil, fmt.Errorf("apijobs status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		engine.IncrAPIJobsErrors()
		return nil, fmt.Errorf("apijobs read: %w", err)
	}

	var parsed apiJobsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		engine.IncrAPIJobsErrors()
		return nil, fmt.Errorf("apijobs decode: %w", err)
	}

	now := time.Now()
	posts := make([]JobPost, 0, len(parsed.Hits))
	for _, hit := range parsed.Hits {
		post, err := MapHit(hit, now)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
