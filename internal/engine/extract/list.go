package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeList canonicalizes a comma-separated free-text list: each entry
// is trimmed and gets its first letter uppercased (the rest is untouched —
// this is not title case), and entries are rejoined with ", ".
// Empty entries from stray commas are kept as empty segments, matching how
// the form fields round-trip the value. Normalizing an already-normalized
// list returns it unchanged.
func NormalizeList(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = capitalize(strings.TrimSpace(p))
	}
	return strings.Join(parts, ", ")
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
