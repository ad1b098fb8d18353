package types

import "strings"

// Normalize converts human-entered labels such as "In Progress" or "at-risk"
// into the canonical constant form ("IN_PROGRESS", "AT_RISK").
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return strings.ToUpper(s)
}
