package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseISODate parses a strict RFC-3339 timestamp and truncates it to
// midnight UTC. This path only receives machine-generated strings (API
// responses); malformed input means an upstream contract broke, so the
// error is surfaced rather than masked.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse iso date %q: %w", s, err)
	}
	return midnightUTC(t), nil
}

// relativeRe matches "N <unit>(s) ago" phrases scraped from posting pages.
var relativeRe = regexp.MustCompile(`(?i)^(\d+)\s+(hour|day|week|month)s?\s+ago$`)

// ParseRelativeDate resolves a relative phrase ("3 days ago", "1 month ago",
// "just now") against the supplied anchor time and returns the resulting
// calendar date at midnight UTC. The anchor is a parameter — not the wall
// clock — so tests can pin it; production callers pass time.Now().
//
// Unrecognized phrases return ok=false. The scraped site's vocabulary can
// change without notice, and guessing "today" for a phrase we do not
// understand would silently corrupt posting dates.
func ParseRelativeDate(phrase string, now time.Time) (time.Time, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))

	switch p {
	case "just now", "today", "moments ago":
		return midnightUTC(now), true
	}

	m := relativeRe.FindStringSubmatch(p)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	t := now.UTC()
	switch m[2] {
	case "hour":
		t = t.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = t.AddDate(0, 0, -n)
	case "week":
		t = t.AddDate(0, 0, -7*n)
	case "month":
		t = t.AddDate(0, -n, 0)
	}
	return midnightUTC(t), true
}

// midnightUTC truncates a time to its UTC calendar date.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
