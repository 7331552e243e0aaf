package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/anatolykoptev/go_hunter/internal/engine"
	"github.com/anatolykoptev/go_hunter/internal/engine/extract"
	"golang.org/x/net/html"
)

// LinkedIn job view URL prefix for public (guest) posting pages.
const linkedInJobView = "https://www.linkedin.com/jobs/view/"

// jobIDRe extracts job ID from LinkedIn job URLs.
// Matches both /jobs/view/4335742219 and /jobs/view/golang-developer-at-ceipal-4335742219
var jobIDRe = regexp.MustCompile(`/jobs/view/[^?]*?(\d{7,})`)

// ExtractJobID extracts a LinkedIn job ID from a URL.
func ExtractJobID(jobURL string) string {
	if m := jobIDRe.FindStringSubmatch(jobURL); m != nil {
		return m[1]
	}
	return ""
}

// JobViewURL builds the public job view URL for a bare LinkedIn job ID.
func JobViewURL(id string) string {
	return linkedInJobView + id
}

// CapturePosting fetches a job posting page and extracts a structured
// JobPost. Results are cached by URL so repeated captures of the same
// posting stay cheap.
func CapturePosting(ctx context.Context, jobURL string) (*JobPost, error) {
	engine.IncrCaptureRequests()

	cacheKey := engine.CacheKey("post", jobURL)
	if data, ok := engine.CacheGet(ctx, cacheKey); ok {
		var post JobPost
		if json.Unmarshal(data, &post) == nil {
			return &post, nil
		}
	}

	body, err := engine.FetchPage(ctx, jobURL, "https://www.linkedin.com/")
	if err != nil {
		engine.IncrCaptureErrors()
		return nil, fmt.Errorf("capture %s: %w", jobURL, err)
	}

	post, err := parsePostingHTML(string(body), jobURL, time.Now())
	if err != nil {
		engine.IncrCaptureErrors()
		return nil, err
	}

	if data, err := json.Marshal(post); err == nil {
		engine.CacheSet(ctx, cacheKey, data)
	}
	return post, nil
}

// parsePostingHTML extracts a JobPost from a posting page. The JSON-LD
// schema.org/JobPosting block is authoritative when present; top-card DOM
// selectors fill whatever it left blank. Field-level extraction misses
// leave fields absent — a posting without a stated salary is normal, not
// an error.
func parsePostingHTML(body, jobURL string, now time.Time) (*JobPost, error) {
	post := &JobPost{
		URL:           jobURL,
		SourceURL:     "https://linkedin.com",
		DateRetrieved: now.UTC(),
	}

	applyJSONLD(post, body)
	applyTopCard(post, body, now)

	if post.Title == "" && post.Company == "" {
		return nil, fmt.Errorf("no posting found at %s", jobURL)
	}

	if post.Description != "" {
		post.ApplyPostingText(post.Description)
		if max := engine.Cfg.MaxContentChars; max > 0 {
			post.Description = engine.TruncateRunes(post.Description, max, "...")
		}
	}
	return post, nil
}

// applyJSONLD fills post fields from the schema.org/JobPosting JSON-LD
// script block, when the page carries one.
func applyJSONLD(post *JobPost, body string) {
	raw := extractJSONLD(body)
	if raw == "" {
		return
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return
	}

	if title, ok := data["title"].(string); ok {
		post.Title = strings.TrimSpace(title)
	}
	if desc, ok := data["description"].(string); ok {
		post.Description = engine.DescriptionMarkdown(desc)
	}
	if org, ok := data["hiringOrganization"].(map[string]any); ok {
		if name, ok := org["name"].(string); ok {
			post.Company = strings.TrimSpace(name)
		}
	}
	if loc, ok := data["jobLocation"].(map[string]any); ok {
		if addr, ok := loc["address"].(map[string]any); ok {
			city, _ := addr["addressLocality"].(string)
			region, _ := addr["addressRegion"].(string)
			country, _ := addr["addressCountry"].(string)
			post.Location = extract.FormatLocation(city, region, country)
		}
	}
	// Scrape-derived timestamps are best-effort: a malformed datePosted
	// leaves the field absent instead of failing the capture.
	if posted, ok := data["datePosted"].(string); ok {
		if t, err := extract.ParseISODate(posted); err == nil {
			post.DatePosted = &t
		}
	}
	if salary, ok := data["baseSalary"].(map[string]any); ok {
		if currency, ok := salary["currency"].(string); ok {
			post.Currency = currency
		}
		if val, ok := salary["value"].(map[string]any); ok {
			if unit, ok := val["unitText"].(string); ok {
				post.PayUnit = strings.ToLower(unit)
			}
			if minV, ok := val["minValue"].(float64); ok && minV > 0 {
				c := extract.Cents(minV)
				post.MinPayCents = &c
			}
			if maxV, ok := val["maxValue"].(float64); ok && maxV > 0 {
				c := extract.Cents(maxV)
				post.MaxPayCents = &c
			}
		}
	}
}

// applyTopCard fills remaining fields from the top-card DOM of the public
// job view page.
func applyTopCard(post *JobPost, body string, now time.Time) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return
	}

	if post.Title == "" {
		if n := findByClass(doc, "top-card-layout__title"); n != nil {
			post.Title = strings.TrimSpace(textContent(n))
		}
	}
	if post.Company == "" {
		if n := findByClass(doc, "topcard__flavor"); n != nil {
			// Company name is the link inside the first flavor row.
			if a := firstElement(n, "a"); a != nil {
				post.Company = strings.TrimSpace(textContent(a))
			} else {
				post.Company = strings.TrimSpace(textContent(n))
			}
		}
	}
	if post.Location == "" {
		if n := findByClass(doc, "topcard__flavor--bullet"); n != nil {
			post.Location = strings.TrimSpace(textContent(n))
		}
	}
	if post.DatePosted == nil {
		if n := findByClass(doc, "posted-time-ago__text"); n != nil {
			phrase := strings.TrimSpace(textContent(n))
			if t, ok := extract.ParseRelativeDate(phrase, now); ok {
				post.DatePosted = &t
			}
		}
	}
	if post.Description == "" {
		if n := findByClass(doc, "show-more-less-html__markup"); n != nil {
			var sb strings.Builder
			_ = html.Render(&sb, n)
			post.Description = engine.DescriptionMarkdown(sb.String())
		}
	}
}

// extractJSONLD returns the raw JSON of the schema.org/JobPosting script
// block, or "".
func extractJSONLD(body string) string {
	marker := `"@type":"JobPosting"`
	markerAlt := `"@type": "JobPosting"`

	idx := strings.Index(body, marker)
	if idx == -1 {
		idx = strings.Index(body, markerAlt)
	}
	if idx == -1 {
		return ""
	}

	scriptStart := strings.LastIndex(body[:idx], "<script")
	if scriptStart == -1 {
		return ""
	}
	scriptEnd := strings.Index(body[scriptStart:], "</script>")
	if scriptEnd == -1 {
		return ""
	}

	scriptContent := body[scriptStart : scriptStart+scriptEnd]
	jsonStart := strings.Index(scriptContent, ">")
	if jsonStart == -1 {
		return ""
	}
	return strings.TrimSpace(scriptContent[jsonStart+1:])
}

// --- HTML tree helpers ---

// getAttr returns the value of an attribute on a node, or "".
func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass checks if a node's class attribute contains the given class name.
func hasClass(n *html.Node, className string) bool {
	return strings.Contains(getAttr(n, "class"), className)
}

// textContent recursively extracts all text from a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// findByClass finds the first descendant element with the given class.
func findByClass(n *html.Node, className string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, className) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, className); found != nil {
			return found
		}
	}
	return nil
}

// firstElement finds the first descendant element with the given tag name.
func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
