// Package extract derives normalized structured values from noisy,
// human-authored text: salary ranges, years-of-experience bounds, posting
// dates, and free-text lists. Every function here is pure — no I/O, no
// shared state — so the scraper, enrichment, and tool layers can call them
// from any goroutine.
package extract

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPay is returned when a manually entered pay string does not
// parse as a decimal number. Callers must surface it, never coerce to zero:
// a silently wrong dollar amount is worse than a visible failure.
var ErrInvalidPay = errors.New("invalid pay amount")

// ParsePay converts a user-typed dollar amount ("85000", "1234.5") to
// integer cents via round(dollars*100). Comma-grouped input ("85,000")
// fails: the manual-entry path deliberately does not strip separators.
func ParsePay(s string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPay, s)
	}
	return Cents(f), nil
}

// Cents converts a dollar amount to integer cents, rounding to the nearest
// cent. The parsed amount is always reconstructible from its decimal source.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatPay renders cents as a two-decimal dollar string, "" for nil.
func FormatPay(cents *int64) string {
	if cents == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", float64(*cents)/100)
}

// SalaryMatch is one amount/period occurrence found in scraped salary text,
// e.g. (85000.0, "yr") from "$85,000.00/yr".
type SalaryMatch struct {
	Amount float64
	Period string
}

// salaryRe matches a non-digit boundary, a comma-grouped decimal number with
// exactly two decimal places, a slash, and a lowercase period unit (yr, hr).
var salaryRe = regexp.MustCompile(`[^\d]((?:\d{1,3},)*\d{1,3}\.\d{2})/([a-z]+)`)

// FindSalaryRange scans arbitrary posting text for amount-per-period
// occurrences and returns them in order of appearance. No occurrences is a
// normal result (empty slice, nil error); a number the pattern admits but
// the float parser rejects is a hard error — the whole scan fails rather
// than dropping an amount.
func FindSalaryRange(text string) ([]SalaryMatch, error) {
	var matches []SalaryMatch
	for _, m := range salaryRe.FindAllStringSubmatch(text, -1) {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("salary match %q: %w", m[1], err)
		}
		matches = append(matches, SalaryMatch{Amount: amount, Period: m[2]})
	}
	return matches, nil
}

// SalaryBounds applies the source-site ordering convention to a match list:
// the first occurrence is the upper bound, the second the lower bound, the
// rest are ignored. A single match populates only max. The convention lives
// here, in one named place, so it can be swapped when the site changes its
// range markup.
func SalaryBounds(matches []SalaryMatch) (minCents, maxCents *int64) {
	if len(matches) > 0 {
		c := Cents(matches[0].Amount)
		maxCents = &c
	}
	if len(matches) > 1 {
		c := Cents(matches[1].Amount)
		minCents = &c
	}
	return minCents, maxCents
}
