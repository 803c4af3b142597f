package frontmatter

import (
	"regexp"
	"strings"
)

var (
	blockPattern = regexp.MustCompile(`(?s)^---[ \t]*\r?\n(?:(.*?)\r?\n)?---[ \t]*(?:\r?\n|$)(.*)$`)
	linePattern  = regexp.MustCompile(`^([\w-]+)\s*:(?:\s+(.*)|\s*)$`)
)

// Document is the result of splitting a note into metadata and body.
type Document struct {
	Metadata *Metadata
	Body     string
}

// Parse splits text into its frontmatter block and body. The boolean is false
// when text does not open with a "---" delimited block; that is not an error,
// the text is simply not a frontmatter document.
func Parse(text string) (Document, bool) {
	text = strings.TrimPrefix(text, "\ufeff")
	match := blockPattern.FindStringSubmatch(text)
	if match == nil {
		return Document{}, false
	}
	return Document{
		Metadata: ParseBlock(match[1]),
		Body:     match[2],
	}, true
}

// ParseBlock decodes the lines between the delimiters. Blank lines, comments
// and lines that are not "key: value" pairs are skipped.
func ParseBlock(block string) *Metadata {
	meta := NewMetadata()
	for _, line := range strings.Split(block, "\n") {
		key, raw, ok := SplitLine(line)
		if !ok {
			continue
		}
		meta.Set(key, DecodeScalar(raw))
	}
	return meta
}

// SplitLine matches a single "key: value" line and returns its parts. The
// value is returned undecoded. As in YAML, a non-empty value must be separated
// from the colon by whitespace, so "key:value" and "12:30" are not pairs.
func SplitLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	match := linePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", "", false
	}
	return match[1], strings.TrimSpace(match[2]), true
}
