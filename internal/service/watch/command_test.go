package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/drivesafe/internal/pb/v1"
)

// TestFormatStatus checks the verdict line for both alert states.
func TestFormatStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil status>", FormatStatus(nil))

	status := &pb.SpeedStatusResponse{
		Timestamp: timestamppb.New(time.Unix(1700000000, 0).UTC()),
		SpeedKmh:  54,
		LimitKmh:  60,
		State:     pb.AlertState_ALERT_STATE_ARMED,
	}

	formatted := FormatStatus(status)
	require.Contains(t, formatted, "All good!")
	require.Contains(t, formatted, "54 km/h (limit 60 km/h)")

	status.State = pb.AlertState_ALERT_STATE_TRIGGERED
	status.SpeedKmh = 72

	formatted = FormatStatus(status)
	require.Contains(t, formatted, "SLOW DOWN!")
	require.Contains(t, formatted, "72 km/h")
}
