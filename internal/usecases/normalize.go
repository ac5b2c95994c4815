package usecases

import (
	"fmt"
	"strings"
)

// normalizeField flattens one generated metadata value into a plain string:
// lists become a comma-joined string, nulls become "", anything else is
// rendered with its default formatting.
func normalizeField(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, normalizeField(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	case float64:
		// JSON numbers arrive as float64; render integers without a decimal
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// joinList flattens a string list with the given separator, skipping empties
func joinList(items []string, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, sep)
}
