package models

import "strings"

// Categories is the closed set of achievement/item categories. Summaries
// report every category, defaulting absent ones to zero, so readers never
// have to guess at sparse keys.
var Categories = []string{"health", "mind", "social", "environment", "finance"}

// NormalizeCategory maps free-form input onto the canonical category key.
func NormalizeCategory(s string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if c == key {
			return c, true
		}
	}
	return "", false
}

// CategoryTitle renders a canonical key for display (first letter upper-cased).
func CategoryTitle(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
