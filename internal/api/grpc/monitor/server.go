package monitor

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/drivesafe/internal/domain/speed"
	pb "github.com/oshokin/drivesafe/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	SetSpeedLimit(ctx context.Context, actor *domain.Actor, limitKmh int) (*domain.Status, error)
	GetSpeedStatus(ctx context.Context) *domain.Status
}

// Server implements the MonitorService gRPC API.
type Server struct {
	pb.UnimplementedMonitorServiceServer

	// service provides the business logic for monitor operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// SetSpeedLimit updates the configured speed limit and returns the
// re-evaluated session status.
func (s *Server) SetSpeedLimit(ctx context.Context, req *pb.SetSpeedLimitRequest) (*pb.SpeedStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	actor := toDomainActor(req.GetActor())

	result, err := s.service.SetSpeedLimit(ctx, actor, int(req.GetLimitKmh()))
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to update limit")
	}

	return toProtoStatus(result), nil
}

// GetSpeedStatus returns the current session status.
func (s *Server) GetSpeedStatus(ctx context.Context, _ *pb.GetSpeedStatusRequest) (*pb.SpeedStatusResponse, error) {
	result := s.service.GetSpeedStatus(ctx)

	return toProtoStatus(result), nil
}

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toProtoState converts a domain alert state to its protobuf enum value.
func toProtoState(state domain.State) pb.AlertState {
	if state == domain.StateTriggered {
		return pb.AlertState_ALERT_STATE_TRIGGERED
	}

	return pb.AlertState_ALERT_STATE_ARMED
}

// toProtoStatus converts a domain Status object to a pb.SpeedStatusResponse protobuf message.
func toProtoStatus(result *domain.Status) *pb.SpeedStatusResponse {
	if result == nil {
		return &pb.SpeedStatusResponse{}
	}

	var timestamp *timestamppb.Timestamp
	if !result.Timestamp.IsZero() {
		timestamp = timestamppb.New(result.Timestamp)
	}

	var actor *pb.SystemActor
	if result.LastActor != nil {
		actor = &pb.SystemActor{
			Hostname: result.LastActor.Hostname,
			Username: result.LastActor.Username,
		}
	}

	return &pb.SpeedStatusResponse{
		Timestamp: timestamp,
		SpeedKmh:  int32(result.SpeedKmh),
		LimitKmh:  int32(result.LimitKmh),
		State:     toProtoState(result.State),
		LastActor: actor,
	}
}
