package utils

import "time"

// TruncateWithEllipsis cuts s to max characters and appends "..." when
// something was cut. Counts runes, not bytes.
func TruncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// FormatPostDate renders timestamps the way job cards display them,
// e.g. "Jan 05, 2024".
func FormatPostDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
