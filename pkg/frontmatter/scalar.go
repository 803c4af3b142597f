package frontmatter

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// DecodeScalar coerces a raw value using the frontmatter dialect rules, in
// order: empty text, true/false, one layer of matching quotes, a strict
// number, and finally the trimmed text itself. The result is always a string,
// bool or float64.
func DecodeScalar(raw string) any {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if unquoted, ok := Unquote(value); ok {
		return unquoted
	}
	if parsed, ok := ParseNumber(value); ok {
		return parsed
	}
	return value
}

// ParseNumber parses a plain decimal number with an optional sign, fraction
// and exponent. NaN, infinities and hex floats are rejected, as is anything
// that overflows float64.
func ParseNumber(value string) (float64, bool) {
	if !numberPattern.MatchString(value) {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// Unquote strips a single layer of matching single or double quotes.
func Unquote(value string) (string, bool) {
	if len(value) < 2 {
		return value, false
	}
	first, last := value[0], value[len(value)-1]
	if first != last || (first != '"' && first != '\'') {
		return value, false
	}
	return value[1 : len(value)-1], true
}
