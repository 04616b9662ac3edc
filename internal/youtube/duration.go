package youtube

import (
	"regexp"
	"strconv"

	"thirdcoast.systems/tubescan/internal/analysis"
)

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts an ISO-8601 duration like "PT1M30S" to seconds.
// Unparseable input degrades to 0 rather than an error, which downstream
// classifies as a Short; callers relying on the distinction must validate
// the input themselves.
func ParseISODuration(iso string) int64 {
	m := isoDurationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	hours, _ := strconv.ParseInt(zeroIfEmpty(m[1]), 10, 64)
	minutes, _ := strconv.ParseInt(zeroIfEmpty(m[2]), 10, 64)
	seconds, _ := strconv.ParseInt(zeroIfEmpty(m[3]), 10, 64)

	return hours*3600 + minutes*60 + seconds
}

// IsShort reports whether a duration classifies a video as a Short.
func IsShort(seconds int64) bool {
	return seconds <= analysis.ShortMaxSeconds
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
