package model

import (
	"fmt"
	"strconv"
)

// ScalarString renders a decoded scalar (string, bool or float64) back into
// its textual form. Integral floats drop their fractional part.
func ScalarString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return fmt.Sprint(typed)
	}
}

// IsEmptyScalar reports whether value is absent or an empty string. Booleans
// and numbers are never empty.
func IsEmptyScalar(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	default:
		return false
	}
}
