package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return consistent build metadata.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), "drivesafe")
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
}
