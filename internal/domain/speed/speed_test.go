package speed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestEvaluate_Conversion verifies the truncating m/s to km/h conversion.
func TestEvaluate_Conversion(t *testing.T) {
	t.Parallel()

	cases := map[float64]int{
		0:     0,
		1:     3,
		16.67: 60,
		20.0:  72,
		27.9:  100,
	}
	for mps, wantKmh := range cases {
		kmh, _, _ := Evaluate(mps, DefaultLimitKmh, StateArmed)
		require.Equal(t, wantKmh, kmh, "speed %v m/s", mps)
	}
}

// TestEvaluate_EdgeTriggeredCue checks the one-shot cue across a full excursion.
func TestEvaluate_EdgeTriggeredCue(t *testing.T) {
	t.Parallel()

	// Crossing the limit fires the cue once.
	kmh, state, fire := Evaluate(20.0, 60, StateArmed)
	require.Equal(t, 72, kmh)
	require.Equal(t, StateTriggered, state)
	require.True(t, fire)

	// Still above the limit: no repeated cue.
	_, state, fire = Evaluate(21.0, 60, state)
	require.Equal(t, StateTriggered, state)
	require.False(t, fire)

	// Back under the limit: re-arms silently.
	_, state, fire = Evaluate(10.0, 60, state)
	require.Equal(t, StateArmed, state)
	require.False(t, fire)

	// A new excursion fires again.
	_, state, fire = Evaluate(20.0, 60, state)
	require.Equal(t, StateTriggered, state)
	require.True(t, fire)
}

// TestEvaluate_AtLimitIsArmed verifies that exactly the limit does not trigger.
func TestEvaluate_AtLimitIsArmed(t *testing.T) {
	t.Parallel()

	// 16.67 m/s is 60.012 km/h, truncated to 60; 60 is not > 60.
	kmh, state, fire := Evaluate(16.67, 60, StateArmed)
	require.Equal(t, 60, kmh)
	require.Equal(t, StateArmed, state)
	require.False(t, fire)
}

// TestEvaluate_ZeroLimit verifies that a zero limit triggers on any positive speed.
func TestEvaluate_ZeroLimit(t *testing.T) {
	t.Parallel()

	_, state, fire := Evaluate(0.5, 0, StateArmed)
	require.Equal(t, StateTriggered, state)
	require.True(t, fire)

	// Standing still never triggers.
	_, state, fire = Evaluate(0, 0, StateArmed)
	require.Equal(t, StateArmed, state)
	require.False(t, fire)
}

// TestParseLimit verifies text input coercion.
func TestParseLimit(t *testing.T) {
	t.Parallel()

	require.Equal(t, 60, ParseLimit("60"))
	require.Equal(t, 90, ParseLimit(" 90 "))
	require.Equal(t, 0, ParseLimit(""))
	require.Equal(t, 0, ParseLimit("abc"))
	require.Equal(t, 0, ParseLimit("6O"))
	require.Equal(t, -5, ParseLimit("-5"))
}

// TestStatusClone verifies that Clone copies fields and deep-copies LastActor.
func TestStatusClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Status)(nil).Clone())

	s := Status{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		SpeedKmh:  72,
		LimitKmh:  60,
		State:     StateTriggered,
		LastActor: &Actor{
			Hostname: "garage-pi",
			Username: "o.shokin",
		},
	}

	c := s.Clone()
	require.Equal(t, &s, c)
	require.NotSame(t, &s, c)
	require.NotSame(t, s.LastActor, c.LastActor)
}
