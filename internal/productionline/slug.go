package productionline

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a url-friendly key from a line name: accents are
// stripped, letters are lowercased and every run of other characters
// becomes a single separator. Names without ASCII letters or digits
// yield "".
func Slugify(name string) string {
	// transformers carry state, so build one per call
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteString(SlugSeparator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// slugCandidate returns base for attempt 1 and base-N afterwards
func slugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return base + SlugSeparator + strconv.Itoa(attempt)
}
