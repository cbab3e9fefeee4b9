package topicgraph

import (
	"regexp"
	"strings"
)

// maxSlugLen bounds slug length so arbitrary topic input cannot produce
// unbounded identifiers.
const maxSlugLen = 80

var nonSlugRunes = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slugify converts free text into a node slug: lowercase, punctuation
// stripped, whitespace and dash runs collapsed to single dashes,
// truncated to maxSlugLen runes. Idempotent: Slugify(Slugify(x)) ==
// Slugify(x).
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugRunes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if runes := []rune(s); len(runes) > maxSlugLen {
		s = strings.Trim(string(runes[:maxSlugLen]), "-")
	}
	return s
}
