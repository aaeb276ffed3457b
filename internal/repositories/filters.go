package repositories

import "strings"

// eqValue expands a comma-joined filter value into a slice so squirrel emits
// IN (...) instead of matching the joined string literally.
func eqValue(val interface{}) interface{} {
	s, ok := val.(string)
	if !ok || !strings.Contains(s, ",") {
		return val
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
