package domain

import (
	"strings"
	"unicode"
)

// Slugify lower-cases s, turns whitespace runs into a single hyphen, drops
// anything outside [a-z0-9-], collapses hyphen runs and trims hyphens at
// both ends. The result may be empty.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	// Collapse hyphen runs left over from stripping and trim the ends.
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}
