package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/drivesafe/internal/domain/speed"
	pb "github.com/oshokin/drivesafe/internal/pb/v1"
)

// fakeService implements the monitor Service interface for unit testing the transport.
type fakeService struct {
	// setFn is a function type that sets the speed limit for a given actor.
	setFn func(ctx context.Context, actor *speed.Actor, limitKmh int) (*speed.Status, error)

	// status holds the current speed status managed by the fake service.
	status *speed.Status
}

// SetSpeedLimit stores a new limit on behalf of the given actor.
// If a custom set function (setFn) is provided, it delegates the operation to it.
// Otherwise, it records the limit along with the actor and the current timestamp.
// Returns the updated status and an error, if any.
func (f *fakeService) SetSpeedLimit(ctx context.Context, actor *speed.Actor, limitKmh int) (*speed.Status, error) {
	if f.setFn != nil {
		return f.setFn(ctx, actor, limitKmh)
	}

	f.status = &speed.Status{
		Timestamp: time.Now(),
		LimitKmh:  limitKmh,
		State:     speed.StateArmed,
		LastActor: actor,
	}

	return f.status, nil
}

// GetSpeedStatus returns the current status stored in the fake service.
func (f *fakeService) GetSpeedStatus(context.Context) *speed.Status { return f.status }

// TestServer_SetSpeedLimit_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_SetSpeedLimit_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	_, err := s.SetSpeedLimit(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	request := &pb.SetSpeedLimitRequest{Actor: nil}

	_, err = s.SetSpeedLimit(context.Background(), request)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Roundtrip exercises SetSpeedLimit and GetSpeedStatus end-to-end on the server implementation.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	// Create server with fake service for isolated testing.
	s := NewServer(new(fakeService))

	// Create test request with actor information.
	request := &pb.SetSpeedLimitRequest{
		Actor: &pb.SystemActor{
			Hostname: "test-hostname",
			Username: "test-user",
		},
		LimitKmh: 80,
	}

	// Set the limit and verify no error.
	_, err := s.SetSpeedLimit(context.Background(), request)
	require.NoError(t, err)

	// Get the status and verify it was persisted correctly.
	response, err := s.GetSpeedStatus(context.Background(), new(pb.GetSpeedStatusRequest))

	require.NoError(t, err)
	require.EqualValues(t, 80, response.GetLimitKmh())
	require.Equal(t, pb.AlertState_ALERT_STATE_ARMED, response.GetState())
	require.NotNil(t, response.GetLastActor())
	require.Equal(t, "test-hostname", response.GetLastActor().GetHostname())
	require.Equal(t, "test-user", response.GetLastActor().GetUsername())
}

// TestServer_GetSpeedStatus_Empty verifies the server answers before any telemetry arrives.
func TestServer_GetSpeedStatus_Empty(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	response, err := s.GetSpeedStatus(context.Background(), new(pb.GetSpeedStatusRequest))
	require.NoError(t, err)
	require.Nil(t, response.GetLastActor())
	require.Equal(t, pb.AlertState_ALERT_STATE_ARMED, response.GetState())
}
