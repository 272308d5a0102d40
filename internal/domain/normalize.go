package domain

import "strings"

// NormalizeToken prepares a user-entered search key for comparison with
// stored word values: trims surrounding whitespace and replaces internal
// spaces with underscores, matching how the corpus stores compound tokens.
// Case and diacritics are preserved.
func NormalizeToken(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return strings.ReplaceAll(key, " ", "_")
}
