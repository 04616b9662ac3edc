package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func timestampsEvery(d time.Duration, n int) []time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, base.Add(-time.Duration(i)*d))
	}
	return out
}

func TestEstimateCadence_TooFewTimestamps(t *testing.T) {
	require.Equal(t, "N/A", EstimateCadence(nil))
	require.Equal(t, "N/A", EstimateCadence(timestampsEvery(24*time.Hour, 1)))
}

func TestEstimateCadence_Hours(t *testing.T) {
	require.Equal(t, "6.0 hours", EstimateCadence(timestampsEvery(6*time.Hour, 4)))
}

func TestEstimateCadence_Days(t *testing.T) {
	require.Equal(t, "2.0 days", EstimateCadence(timestampsEvery(48*time.Hour, 5)))
}

func TestEstimateCadence_Weeks(t *testing.T) {
	require.Equal(t, "2.0 weeks", EstimateCadence(timestampsEvery(14*24*time.Hour, 3)))
}

func TestEstimateCadence_Months(t *testing.T) {
	require.Equal(t, "1.5 months", EstimateCadence(timestampsEvery(45*24*time.Hour, 3)))
}

func TestEstimateCadence_UnsortedInput(t *testing.T) {
	ts := timestampsEvery(24*time.Hour, 4)
	shuffled := []time.Time{ts[2], ts[0], ts[3], ts[1]}
	require.Equal(t, "1.0 days", EstimateCadence(shuffled))
}

func TestCadenceConsistency_RegularSchedule(t *testing.T) {
	require.InDelta(t, 0, CadenceConsistency(timestampsEvery(24*time.Hour, 5)), 1e-9)
}

func TestCadenceConsistency_IrregularSchedule(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{
		base,
		base.Add(-1 * 24 * time.Hour),
		base.Add(-8 * 24 * time.Hour),
	}
	// Gaps of 1 and 7 days: mean 4, population stddev 3.
	require.InDelta(t, 3, CadenceConsistency(ts), 1e-9)
}
