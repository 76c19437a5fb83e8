package tone

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Player emits a short audible pulse of the given duration.
type Player interface {
	Play(ctx context.Context, duration time.Duration) error
}

// ConsolePlayer rings the terminal bell. The bell itself has no
// controllable length, so the player holds the call for the pulse duration
// to keep cue timing consistent across implementations.
type ConsolePlayer struct {
	// out is the destination for the bell character.
	out io.Writer
}

// NewConsolePlayer creates a player writing to the provided writer,
// defaulting to stdout when nil.
func NewConsolePlayer(out io.Writer) *ConsolePlayer {
	if out == nil {
		out = os.Stdout
	}

	return &ConsolePlayer{out: out}
}

// Play writes the bell character and waits out the pulse duration.
func (p *ConsolePlayer) Play(ctx context.Context, duration time.Duration) error {
	if _, err := fmt.Fprint(p.out, "\a"); err != nil {
		return fmt.Errorf("write bell: %w", err)
	}

	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NullPlayer discards cues. It is used when the monitor runs without a
// terminal and in tests.
type NullPlayer struct{}

// Play does nothing.
func (NullPlayer) Play(context.Context, time.Duration) error {
	return nil
}
