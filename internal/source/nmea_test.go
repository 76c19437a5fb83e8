package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// nmeaLine appends a valid checksum to the provided payload.
func nmeaLine(payload string) string {
	check := byte(0)
	for i := 0; i < len(payload); i++ {
		check ^= payload[i]
	}

	return fmt.Sprintf("$%s*%02X", payload, check)
}

// TestSpeedFromSentence verifies RMC parsing and checksum handling.
func TestSpeedFromSentence(t *testing.T) {
	t.Parallel()

	// Valid RMC with 22.4 knots over ground.
	line := nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")

	speedMPS, err := speedFromSentence(line)
	require.NoError(t, err)
	require.InDelta(t, 22.4*metersPerSecondPerKnot, speedMPS, 1e-9)

	// GN talker prefix is accepted.
	line = nmeaLine("GNRMC,123519,A,4807.038,N,01131.000,E,010.0,084.4,230394,003.1,W")

	speedMPS, err = speedFromSentence(line)
	require.NoError(t, err)
	require.InDelta(t, 10*metersPerSecondPerKnot, speedMPS, 1e-9)

	// Void fixes are skipped.
	line = nmeaLine("GPRMC,123519,V,,,,,,,230394,,")
	_, err = speedFromSentence(line)
	require.ErrorIs(t, err, errVoidFix)

	// Non-RMC sentences are skipped.
	line = nmeaLine("GNGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	_, err = speedFromSentence(line)
	require.ErrorIs(t, err, errVoidFix)

	// Corrupted checksum is rejected.
	line = nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	_, err = speedFromSentence(line[:len(line)-2] + "00")
	require.Error(t, err)
	require.NotErrorIs(t, err, errVoidFix)
}

// TestNMEASource_Consume verifies the source emits only valid RMC speeds.
func TestNMEASource_Consume(t *testing.T) {
	t.Parallel()

	stream := strings.Join([]string{
		"garbage chatter",
		nmeaLine("GNGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,"),
		nmeaLine("GPRMC,123519,A,4807.038,N,01131.000,E,038.9,084.4,230394,003.1,W"),
		nmeaLine("GPRMC,123520,V,,,,,,,230394,,"),
		nmeaLine("GPRMC,123521,A,4807.038,N,01131.000,E,040.0,084.4,230394,003.1,W"),
	}, "\r\n")

	var speeds []float64

	s := NewNMEASource("unused")
	err := s.consume(context.Background(), strings.NewReader(stream), func(sample Sample) {
		speeds = append(speeds, sample.SpeedMPS)
	})

	// A finished stream surfaces as EOF so Run can report the outage.
	require.True(t, errors.Is(err, io.EOF))
	require.Len(t, speeds, 2)
	require.InDelta(t, 38.9*metersPerSecondPerKnot, speeds[0], 1e-9)
	require.InDelta(t, 40.0*metersPerSecondPerKnot, speeds[1], 1e-9)
}
