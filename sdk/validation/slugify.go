package validation

import (
	"regexp"
	"strings"
)

var (
	slugSeparators  = regexp.MustCompile(`[\s\-_]+`)
	slugDisallowed  = regexp.MustCompile(`[^a-z0-9\-]`)
	slugDoubleDash  = regexp.MustCompile(`-+`)
	slugAccentTable = strings.NewReplacer(
		"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
		"è", "e", "é", "e", "ê", "e", "ë", "e",
		"ì", "i", "í", "i", "î", "i", "ï", "i",
		"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
		"ù", "u", "ú", "u", "û", "u", "ü", "u",
		"ý", "y", "ÿ", "y",
		"ñ", "n", "ç", "c", "ß", "s",
	)
)

// Slugify converts a string to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugAccentTable.Replace(s)
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugDoubleDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
