package limit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/drivesafe/internal/pb/v1"
)

// TestFormatStatus covers the readable status line with and without data.
func TestFormatStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil status>", FormatStatus(nil))

	status := &pb.SpeedStatusResponse{
		Timestamp: timestamppb.New(time.Unix(1700000000, 0).UTC()),
		SpeedKmh:  72,
		LimitKmh:  60,
		LastActor: &pb.SystemActor{
			Hostname: "test-hostname",
			Username: "test-user",
		},
	}

	formatted := FormatStatus(status)
	require.Contains(t, formatted, "60 km/h limit")
	require.Contains(t, formatted, "72 km/h measured")
	require.Contains(t, formatted, "test-user@test-hostname")

	// Missing actor and timestamp fall back to placeholders.
	formatted = FormatStatus(new(pb.SpeedStatusResponse))
	require.Contains(t, formatted, "<unknown>")
}
