package validation

import (
	"strings"
	"unicode"
)

// CamelCaseToTitleCase turns a field name into words for messages.
//
//	"providerAccountId" -> "Provider Account Id"
//	"XMLParser"         -> "XML Parser"
//	"refresh_token"     -> "Refresh Token"
func CamelCaseToTitleCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	runes := []rune(strings.TrimLeft(s, "_"))
	upperNext := true

	for i, r := range runes {
		if r == '_' || r == ' ' {
			if result.Len() > 0 && !upperNext {
				result.WriteRune(' ')
			}
			upperNext = true
			continue
		}

		if upperNext {
			result.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}

		if unicode.IsUpper(r) {
			prevIsLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			prevIsUpper := unicode.IsUpper(runes[i-1])
			nextIsLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])
			if prevIsLower || (prevIsUpper && nextIsLower) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return result.String()
}
