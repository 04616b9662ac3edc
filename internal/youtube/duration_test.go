package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseISODuration_Combinations(t *testing.T) {
	require.Equal(t, int64(90), ParseISODuration("PT1M30S"))
	require.Equal(t, int64(3661), ParseISODuration("PT1H1M1S"))
	require.Equal(t, int64(45), ParseISODuration("PT45S"))
	require.Equal(t, int64(7200), ParseISODuration("PT2H"))
	require.Equal(t, int64(600), ParseISODuration("PT10M"))
}

func TestParseISODuration_InvalidFallsBackToZero(t *testing.T) {
	require.Equal(t, int64(0), ParseISODuration(""))
	require.Equal(t, int64(0), ParseISODuration("not a duration"))
	require.Equal(t, int64(0), ParseISODuration("P1D"))
}

func TestIsShort_Boundary(t *testing.T) {
	require.True(t, IsShort(60))
	require.False(t, IsShort(61))
	require.True(t, IsShort(0))
}
