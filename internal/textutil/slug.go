package textutil

import (
	"strings"
	"unicode"
)

// Slugify converts text into a URL-safe slug: lowercase, with every run of
// non-alphanumeric characters collapsed into a single hyphen and leading or
// trailing hyphens trimmed. Returns "" when the input contains no
// alphanumeric characters at all.
func Slugify(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
