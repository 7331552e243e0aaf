package extract

import "strings"

// FormatLocation joins city, region, and country into one display string,
// in that order, separated by ", ". Blank or whitespace-only fragments are
// dropped entirely, so the result never carries leading, trailing, or
// doubled separators. All blank yields "".
func FormatLocation(city, region, country string) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{city, region, country} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
