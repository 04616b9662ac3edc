package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// CadenceUnknown is returned when there are too few uploads to measure a gap.
const CadenceUnknown = "N/A"

const hoursPerDay = 24

// EstimateCadence renders the mean gap between consecutive uploads as a
// human-readable string ("5.5 hours", "1.0 days", "2.3 weeks", "1.5 months").
// Months are 30 plain 86400-second days; no calendar arithmetic.
func EstimateCadence(timestamps []time.Time) string {
	gaps := uploadGapsDays(timestamps)
	if len(gaps) == 0 {
		return CadenceUnknown
	}

	avgDays := mean(gaps)
	switch {
	case avgDays < 1:
		return fmt.Sprintf("%.1f hours", avgDays*hoursPerDay)
	case avgDays < 7:
		return fmt.Sprintf("%.1f days", avgDays)
	case avgDays < 30:
		return fmt.Sprintf("%.1f weeks", avgDays/7)
	default:
		return fmt.Sprintf("%.1f months", avgDays/30)
	}
}

// CadenceConsistency is the population standard deviation of the gaps
// between consecutive uploads, in days. Feeds the upload-strategy score;
// never rendered directly.
func CadenceConsistency(timestamps []time.Time) float64 {
	gaps := uploadGapsDays(timestamps)
	if len(gaps) == 0 {
		return 0
	}
	return stdDev(gaps)
}

// uploadGapsDays returns the gaps between consecutive timestamps in
// 86400-second days, newest first. Empty when fewer than 2 timestamps.
func uploadGapsDays(timestamps []time.Time) []float64 {
	if len(timestamps) < 2 {
		return nil
	}

	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i+1]).Hours()/hoursPerDay)
	}
	return gaps
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation.
func stdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sq float64
	for _, x := range xs {
		sq += (x - m) * (x - m)
	}
	return math.Sqrt(sq / float64(len(xs)))
}
