package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseTPVLine verifies sample extraction from gpsd JSON reports.
func TestParseTPVLine(t *testing.T) {
	t.Parallel()

	// TPV with scaled speed and a fix time.
	sample, ok, err := parseTPVLine(`{"class":"TPV","mode":3,"time":"2024-05-01T10:00:00.000Z","lat":55.75,"lon":37.61,"speed":16.67}`)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 16.67, sample.SpeedMPS, 1e-9)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), sample.Time)

	// Other classes are ignored.
	_, ok, err = parseTPVLine(`{"class":"SKY","hdop":0.9}`)
	require.NoError(t, err)
	require.False(t, ok)

	// TPV without a speed field carries no sample.
	_, ok, err = parseTPVLine(`{"class":"TPV","mode":1}`)
	require.NoError(t, err)
	require.False(t, ok)

	// Negative speed noise is clamped to zero.
	sample, ok, err = parseTPVLine(`{"class":"TPV","mode":2,"speed":-0.2}`)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, sample.SpeedMPS)

	// Malformed JSON is an error.
	_, _, err = parseTPVLine(`{"class":"TPV"`)
	require.Error(t, err)
}
