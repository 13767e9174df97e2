// Package slug converts display names and titles to URL-safe slugs.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any non-alphanumeric character.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches multiple hyphens.
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Make converts a string to a URL-safe slug.
// "Midnight Harvest" -> "midnight-harvest".
// "Café Noir" -> "cafe-noir".
// "News " -> "news".
func Make(s string) string {
	// Normalize unicode (decompose accented characters).
	s = norm.NFKD.String(s)

	// Remove non-ASCII characters.
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	// Lowercase.
	s = strings.ToLower(s)

	// Replace non-alphanumeric runs with hyphens.
	s = nonAlphanumeric.ReplaceAllString(s, "-")

	// Collapse multiple hyphens.
	s = multipleHyphens.ReplaceAllString(s, "-")

	// Trim leading/trailing hyphens.
	s = strings.Trim(s, "-")

	return s
}

// IsValid reports whether s is already in canonical slug form.
func IsValid(s string) bool {
	return s != "" && s == Make(s)
}
