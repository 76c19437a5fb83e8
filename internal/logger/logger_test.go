package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"panic": zapcore.PanicLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext verifies scoped logger storage and the global fallback.
func TestFromContext(t *testing.T) {
	t.Parallel()

	// Fallback to the global logger.
	require.Same(t, Logger(), FromContext(context.Background()))

	scoped := New(nil).Named("scoped")
	ctx := ToContext(context.Background(), scoped)
	require.Same(t, scoped, FromContext(ctx))

	// WithName derives a child logger, so the context value changes.
	named := WithName(ctx, "child")
	require.NotSame(t, scoped, FromContext(named))
}
