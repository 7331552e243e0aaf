package extract

import (
	"math"
	"regexp"
	"strconv"
)

// yoeRe matches experience mentions: an optional leading number, a non-digit
// separator, a required number with optional "+", whitespace, then the word
// "year"/"years". Covers "3-5 years", "5+ years", "minimum 2 years".
var yoeRe = regexp.MustCompile(`(\d*)[^\d](\d+)\+?\s+years?\b`)

// ExperienceRange scans free text for years-of-experience mentions and
// returns the global envelope across all of them. Job descriptions state
// requirements in scattered phrasing, often more than once (role vs
// nice-to-have skill); a single min/max sweep over every digit group found
// near "year(s)" tolerates that at the cost of occasional false positives
// from unrelated numbers. This is a best-effort heuristic, not NLP.
//
// min is set when any candidate was seen; max only when a second, larger
// distinct value exists — a single value is a floor, not a range. Absent is
// nil, never zero.
func ExperienceRange(text string) (minYears, maxYears *int64) {
	lo := int64(math.MaxInt64)
	hi := int64(-1)
	for _, m := range yoeRe.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			n, err := strconv.ParseInt(g, 10, 64)
			if err != nil {
				continue
			}
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
	}
	if lo == math.MaxInt64 {
		return nil, nil
	}
	minYears = &lo
	if hi > lo {
		maxYears = &hi
	}
	return minYears, maxYears
}
