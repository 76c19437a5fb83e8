package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/drivesafe/internal/domain/speed"
	"github.com/oshokin/drivesafe/internal/logger"
	"github.com/oshokin/drivesafe/internal/metrics"
	"github.com/oshokin/drivesafe/internal/publisher"
	repo "github.com/oshokin/drivesafe/internal/repository/status"
	"github.com/oshokin/drivesafe/internal/source"
	"github.com/oshokin/drivesafe/internal/tone"
)

// service encapsulates the speed evaluation logic and status orchestration.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo stores the session status served to clients.
	repo repo.Repository
	// player fires the audible cue on the armed-to-triggered edge.
	player tone.Player
	// events publishes overspeed transitions, nil when alerts are disabled.
	events publisher.Publisher
	// cueDuration is how long a single cue pulse lasts.
	cueDuration time.Duration

	// mu protects the evaluation state below.
	mu sync.Mutex
	// limitKmh is the configured speed limit.
	limitKmh int
	// state is the current alert state of the session.
	state speed.State
	// lastSpeedMPS is the most recent raw speed measurement.
	lastSpeedMPS float64
	// lastActor identifies who last changed the limit.
	lastActor *speed.Actor
}

// newService creates a service backed by the provided repository and seeds it
// with an armed status carrying the initial limit.
func newService(
	ctx context.Context,
	repository repo.Repository,
	player tone.Player,
	events publisher.Publisher,
	limitKmh int,
	cueDuration time.Duration,
) (*service, error) {
	s := &service{
		repo:        repository,
		player:      player,
		events:      events,
		cueDuration: cueDuration,
		limitKmh:    limitKmh,
		state:       speed.StateArmed,
	}

	initial := &speed.Status{
		Timestamp: time.Now(),
		LimitKmh:  limitKmh,
		State:     speed.StateArmed,
	}

	if err := repository.Update(ctx, initial); err != nil {
		return nil, fmt.Errorf("seed status: %w", err)
	}

	metrics.SpeedLimitKmh.Set(float64(limitKmh))

	return s, nil
}

// Ingest evaluates a single speed sample against the configured limit.
// Sources call it sequentially, one sample at a time.
func (s *service) Ingest(ctx context.Context, sourceName string, sample source.Sample) {
	s.mu.Lock()
	s.lastSpeedMPS = sample.SpeedMPS
	s.mu.Unlock()

	metrics.SamplesTotal.WithLabelValues(sourceName).Inc()

	timestamp := sample.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	current := s.apply(ctx, timestamp)

	logger.DebugKV(ctx, "Sample evaluated",
		"source", sourceName,
		"speed_kmh", current.SpeedKmh,
		"state", current.State.String())
}

// SetSpeedLimit updates the limit and re-evaluates the session against the
// last known speed. Lowering the limit below the current speed fires the cue
// the same way a faster sample would.
func (s *service) SetSpeedLimit(ctx context.Context, actor *speed.Actor, limitKmh int) (*speed.Status, error) {
	s.mu.Lock()
	s.limitKmh = limitKmh
	s.lastActor = actor.Clone()
	s.mu.Unlock()

	current := s.apply(ctx, time.Now())

	logger.InfoKV(ctx, "Speed limit updated", "limit_kmh", limitKmh, "actor", actor)

	return current, nil
}

// GetSpeedStatus returns the current session status.
func (s *service) GetSpeedStatus(ctx context.Context) *speed.Status {
	return s.repo.Current(ctx)
}

// apply recomputes the session status from the stored speed and limit,
// stores it and handles the overspeed transitions.
func (s *service) apply(ctx context.Context, timestamp time.Time) *speed.Status {
	s.mu.Lock()

	previous := s.state
	kmh, next, fireCue := speed.Evaluate(s.lastSpeedMPS, s.limitKmh, previous)
	cleared := previous == speed.StateTriggered && next == speed.StateArmed
	s.state = next

	current := &speed.Status{
		Timestamp: timestamp,
		SpeedKmh:  kmh,
		LimitKmh:  s.limitKmh,
		State:     next,
		LastActor: s.lastActor.Clone(),
	}

	// Store and publish the gauges while the lock is held so snapshots
	// reach the repository in evaluation order; a stale sample evaluated
	// against an old limit must not land after a confirmed limit change.
	if err := s.repo.Update(ctx, current); err != nil {
		logger.Errorf(ctx, "Failed to store session status: %v", err)
	}

	metrics.SpeedKmh.Set(float64(current.SpeedKmh))
	metrics.SpeedLimitKmh.Set(float64(current.LimitKmh))

	s.mu.Unlock()

	if fireCue {
		metrics.OverspeedTotal.Inc()
		logger.WarnKV(ctx, "Speed limit exceeded",
			"speed_kmh", current.SpeedKmh,
			"limit_kmh", current.LimitKmh)

		s.fireCue(ctx)
		s.publishEvent(ctx, publisher.EventOverspeedEntered, current)
	}

	if cleared {
		logger.InfoKV(ctx, "Speed back under limit",
			"speed_kmh", current.SpeedKmh,
			"limit_kmh", current.LimitKmh)

		s.publishEvent(ctx, publisher.EventOverspeedCleared, current)
	}

	return current
}

// fireCue plays a single audible pulse.
func (s *service) fireCue(ctx context.Context) {
	if s.player == nil {
		return
	}

	if err := s.player.Play(ctx, s.cueDuration); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Errorf(ctx, "Failed to play cue: %v", err)
		}

		return
	}

	metrics.CuesFiredTotal.Inc()
}

// publishEvent forwards a transition to the alerts topic when configured.
func (s *service) publishEvent(ctx context.Context, event publisher.EventType, status *speed.Status) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishEvent(ctx, event, status); err != nil {
		logger.Errorf(ctx, "Failed to publish %s event: %v", event, err)
	}
}
