package source

import (
	"context"
	"time"
)

// Sample is a single speed measurement from a location provider.
type Sample struct {
	// Time is when the measurement was taken.
	Time time.Time
	// SpeedMPS is the speed magnitude in meters per second, non-negative.
	SpeedMPS float64
}

// Source is a cancellable subscription producing speed samples.
// Run blocks until the context is canceled, calling emit once per sample
// from a single goroutine.
type Source interface {
	Name() string
	Run(ctx context.Context, emit func(Sample)) error
}
