package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/drivesafe/internal/logger"
)

// DefaultSimCadence is the sample interval used when a script does not set
// one. It sits inside the 0.5s-2s delivery envelope of a real receiver.
const DefaultSimCadence = time.Second

// Script is a deterministic, YAML-loadable drive description.
//
// Legs are played in order; within a leg the speed ramps linearly from the
// previous leg's target (or zero at the start) to the leg target. When Loop
// is false the script holds the final speed after the last leg.
//
// YAML schema:
//
//	cadence: 1s
//	loop: false
//	legs:
//	  - duration: 10s
//	    speed_mps: 14
//	  - duration: 5s
//	    speed_mps: 22
type Script struct {
	Cadence time.Duration `yaml:"cadence"`
	Loop    bool          `yaml:"loop"`
	Legs    []ScriptLeg   `yaml:"legs"`
}

// ScriptLeg is a single segment of the simulated drive.
type ScriptLeg struct {
	Duration time.Duration `yaml:"duration"`
	SpeedMPS float64       `yaml:"speed_mps"`
}

// errEmptyScript is returned when a script has no legs to play.
var errEmptyScript = errors.New("script has no legs")

// DefaultScript is a short city drive that crosses a 60 km/h limit once.
func DefaultScript() Script {
	return Script{
		Cadence: DefaultSimCadence,
		Loop:    true,
		Legs: []ScriptLeg{
			{Duration: 10 * time.Second, SpeedMPS: 13},
			{Duration: 10 * time.Second, SpeedMPS: 20},
			{Duration: 5 * time.Second, SpeedMPS: 20},
			{Duration: 10 * time.Second, SpeedMPS: 8},
		},
	}
}

// LoadScript reads and validates a YAML drive script from path.
func LoadScript(path string) (Script, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(contents, &script); err != nil {
		return Script{}, fmt.Errorf("unmarshal script: %w", err)
	}

	if err := script.validate(); err != nil {
		return Script{}, err
	}

	return script, nil
}

// validate checks leg durations and fills the default cadence.
func (s *Script) validate() error {
	if len(s.Legs) == 0 {
		return errEmptyScript
	}

	for i, leg := range s.Legs {
		if leg.Duration <= 0 {
			return fmt.Errorf("leg %d: duration must be positive", i)
		}

		if leg.SpeedMPS < 0 {
			return fmt.Errorf("leg %d: speed must be non-negative", i)
		}
	}

	if s.Cadence <= 0 {
		s.Cadence = DefaultSimCadence
	}

	return nil
}

// duration is the total playing time of one pass over the legs.
func (s *Script) duration() time.Duration {
	var total time.Duration
	for _, leg := range s.Legs {
		total += leg.Duration
	}

	return total
}

// speedAt returns the scripted speed after the given elapsed time.
func (s *Script) speedAt(elapsed time.Duration) float64 {
	total := s.duration()
	if total <= 0 {
		return 0
	}

	if s.Loop {
		elapsed %= total
	} else if elapsed >= total {
		return s.Legs[len(s.Legs)-1].SpeedMPS
	}

	previous := 0.0

	for _, leg := range s.Legs {
		if elapsed < leg.Duration {
			progress := float64(elapsed) / float64(leg.Duration)

			return previous + (leg.SpeedMPS-previous)*progress
		}

		elapsed -= leg.Duration
		previous = leg.SpeedMPS
	}

	return previous
}

// SimSource plays a Script on a ticker, emitting deterministic samples.
type SimSource struct {
	// script is the drive being simulated.
	script Script
}

// NewSimSource creates a source playing the provided script.
// An empty script is replaced with the default drive.
func NewSimSource(script Script) *SimSource {
	if len(script.Legs) == 0 {
		script = DefaultScript()
	}

	if script.Cadence <= 0 {
		script.Cadence = DefaultSimCadence
	}

	return &SimSource{script: script}
}

// Name returns the source name used in logs and metrics.
func (s *SimSource) Name() string {
	return "sim"
}

// Run emits scripted samples until the script completes (non-looping
// scripts) or the context is canceled.
func (s *SimSource) Run(ctx context.Context, emit func(Sample)) error {
	logger.InfoKV(ctx, "Playing simulated drive",
		"legs", len(s.script.Legs),
		"cadence", s.script.Cadence.String(),
		"loop", s.script.Loop)

	ticker := time.NewTicker(s.script.Cadence)
	defer ticker.Stop()

	started := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(started)

			emit(Sample{
				Time:     now.UTC(),
				SpeedMPS: s.script.speedAt(elapsed),
			})

			if !s.script.Loop && elapsed >= s.script.duration() {
				logger.Info(ctx, "Simulated drive finished")

				return nil
			}
		}
	}
}
