package util

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. Safe on multi-byte input.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
