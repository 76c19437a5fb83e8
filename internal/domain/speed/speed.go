package speed

import (
	"strconv"
	"strings"
	"time"
)

// State is the alert state of a monitoring session.
type State int

const (
	// StateArmed means the session is not currently alerting.
	StateArmed State = iota
	// StateTriggered means the current speed exceeds the configured limit.
	StateTriggered
)

// DefaultLimitKmh is the speed limit applied until the user configures one.
const DefaultLimitKmh = 60

// mpsToKmh is the standard unit conversion factor: 1 m/s = 3.6 km/h.
const mpsToKmh = 3.6

// String returns a human-readable state name.
func (s State) String() string {
	if s == StateTriggered {
		return "TRIGGERED"
	}

	return "ARMED"
}

// Evaluate decides the alert outcome for a single speed sample.
//
// The display speed is the truncating integer conversion of the sample to
// km/h. The state is Triggered exactly when the display speed is strictly
// greater than the limit; a limit of zero or below therefore triggers on any
// positive display speed. The cue fires only on the Armed to Triggered edge,
// at most once per excursion above the limit; it re-arms only after the
// state returns to Armed.
func Evaluate(speedMPS float64, limitKmh int, previous State) (kmh int, next State, fireCue bool) {
	kmh = int(speedMPS * mpsToKmh)

	next = StateArmed
	if kmh > limitKmh {
		next = StateTriggered
	}

	fireCue = next == StateTriggered && previous != StateTriggered

	return kmh, next, fireCue
}

// ParseLimit converts user text input into a speed limit in km/h.
// Empty or non-numeric input is silently coerced to zero, never rejected,
// which makes any positive speed trigger the alert.
func ParseLimit(text string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}

	return limit
}

// Actor identifies who changed the speed limit.
type Actor struct {
	// Hostname is the machine name where the change was made.
	Hostname string
	// Username is the system user who made the change.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Status is the state of a monitoring session at a specific point in time.
type Status struct {
	// Timestamp is when the status was last re-evaluated.
	Timestamp time.Time
	// SpeedKmh is the display speed of the most recent sample.
	SpeedKmh int
	// LimitKmh is the currently configured speed limit.
	LimitKmh int
	// State is the alert state derived from the most recent sample.
	State State
	// LastActor is the user who last changed the speed limit.
	LastActor *Actor
}

// Clone returns a copy of the status to avoid leaking internal references.
func (s *Status) Clone() *Status {
	if s == nil {
		return nil
	}

	return &Status{
		Timestamp: s.Timestamp,
		SpeedKmh:  s.SpeedKmh,
		LimitKmh:  s.LimitKmh,
		State:     s.State,
		LastActor: s.LastActor.Clone(),
	}
}
