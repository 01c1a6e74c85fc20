package common

import "strings"

// Field extracts the column of line between byte offsets start and end,
// trimmed of surrounding whitespace. Lines shorter than the column window
// yield the available portion, or "" when the line ends before start.
func Field(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}
