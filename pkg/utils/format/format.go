package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Duration converts seconds to "M:SS" or "H:MM:SS" display format.
func Duration(seconds int64) string {
	if seconds < 0 {
		return "0:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Number formats an int64 with K/M suffixes for display (e.g. 1500 → "1.5K").
func Number(n int64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

// Count formats an int64 with thousands separators (e.g. "1,234,567").
func Count(n int64) string {
	return humanize.Comma(n)
}

// Truncate returns s truncated to max runes with "..." suffix. Counting
// runes keeps multibyte text (Korean titles) valid UTF-8.
func Truncate(s string, max int) string {
	if max < 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
