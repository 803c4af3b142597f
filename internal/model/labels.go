package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLabeler converts a frontmatter key into a label: underscores become
// spaces and only the first character is upper-cased, so "first_name" becomes
// "First name" and "cssHint" becomes "CssHint".
func DefaultLabeler(key string) string {
	if key == "" {
		return ""
	}
	spaced := strings.ReplaceAll(key, "_", " ")
	first, size := utf8.DecodeRuneInString(spaced)
	return string(unicode.ToUpper(first)) + spaced[size:]
}
