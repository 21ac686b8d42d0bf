package utils

import (
	"strconv"
	"strings"
)

// ToBool converts query and form values to bool.
// It accepts bool, integers (non-zero is true) and strings such as "1", "true", "yes" or "on".
// Anything else is false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case string:
		return parseBoolString(v)
	case []byte:
		return parseBoolString(string(v))
	default:
		return false
	}
}

func parseBoolString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "yes", "y", "on":
		return true
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
