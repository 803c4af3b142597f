package fieldsblock

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```fields[ \\t]*\\r?\\n(.*?)```")

// Extraction is the result of pulling the fields block out of a note body.
type Extraction struct {
	// FieldsText holds the block content; Found is false when no block exists.
	FieldsText string
	Found      bool
	// RemainingBody is the body with the block removed, trimmed.
	RemainingBody string
}

// Extract finds the first ```fields fenced block in body and removes it.
func Extract(body string) Extraction {
	loc := fencePattern.FindStringSubmatchIndex(body)
	if loc == nil {
		return Extraction{RemainingBody: strings.TrimSpace(body)}
	}
	remaining := body[:loc[0]] + body[loc[1]:]
	return Extraction{
		FieldsText:    body[loc[2]:loc[3]],
		Found:         true,
		RemainingBody: strings.TrimSpace(remaining),
	}
}
