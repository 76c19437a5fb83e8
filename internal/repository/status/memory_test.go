package status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// TestMemoryRepository verifies update/read behavior and copy semantics.
func TestMemoryRepository(t *testing.T) {
	t.Parallel()

	initial := &speed.Status{
		Timestamp: time.Unix(100, 0),
		LimitKmh:  speed.DefaultLimitKmh,
		State:     speed.StateArmed,
	}

	r := NewMemoryRepository(initial)
	ctx := context.Background()

	got := r.Current(ctx)
	require.Equal(t, initial, got)
	require.NotSame(t, initial, got)

	next := &speed.Status{
		Timestamp: time.Unix(200, 0),
		SpeedKmh:  72,
		LimitKmh:  60,
		State:     speed.StateTriggered,
	}

	require.NoError(t, r.Update(ctx, next))

	got = r.Current(ctx)
	require.Equal(t, next, got)

	// Mutating the stored copy must not leak into the repository.
	got.SpeedKmh = 0
	require.Equal(t, 72, r.Current(ctx).SpeedKmh)
}
