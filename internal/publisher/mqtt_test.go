package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// TestMarshalEvent verifies the published payload shape.
func TestMarshalEvent(t *testing.T) {
	t.Parallel()

	status := &speed.Status{
		Timestamp: time.Unix(1714557600, 0).UTC(),
		SpeedKmh:  72,
		LimitKmh:  60,
		State:     speed.StateTriggered,
	}

	payload, err := marshalEvent(EventOverspeedEntered, status)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, string(EventOverspeedEntered), decoded["event"])
	require.EqualValues(t, 72, decoded["speed_kmh"])
	require.EqualValues(t, 60, decoded["limit_kmh"])
	require.EqualValues(t, 1714557600, decoded["timestamp"])
}
