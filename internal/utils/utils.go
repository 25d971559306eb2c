// Package utils holds small helpers shared by the commands.
package utils

import "strings"

// TruncateForLog collapses whitespace runs into single spaces and shortens
// the result to limit runes, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// JoinForLog joins items with "; " and truncates the result.
func JoinForLog(items []string, limit int) string {
	return TruncateForLog(strings.Join(items, "; "), limit)
}
