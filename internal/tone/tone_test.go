package tone

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConsolePlayer_Play verifies the bell is written and the pulse is held.
func TestConsolePlayer_Play(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := NewConsolePlayer(&out)

	started := time.Now()
	err := p.Play(context.Background(), 20*time.Millisecond)

	require.NoError(t, err)
	require.Equal(t, "\a", out.String())
	require.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
}

// TestConsolePlayer_CanceledContext verifies cancellation cuts the pulse short.
func TestConsolePlayer_CanceledContext(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := NewConsolePlayer(&out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Play(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}
