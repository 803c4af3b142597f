package output

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	pathReplacer = strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-",
		"*", "", "?", "", "\"", "", "<", "", ">", "", "|", "",
		"#", "", "^", "", "[", "", "]", "",
		"\n", " ", "\r", " ", "\t", " ",
	)
)

// PlainText strips any markup from value and decodes entities, leaving the
// text a user would see.
func PlainText(value string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(value))
}

// SanitizeSegment makes value safe to use inside a single path segment.
func SanitizeSegment(value string) string {
	cleaned := pathReplacer.Replace(PlainText(value))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.Trim(cleaned, " .")
}
