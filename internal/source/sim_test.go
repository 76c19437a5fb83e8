package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestScriptSpeedAt verifies ramping, holding and looping.
func TestScriptSpeedAt(t *testing.T) {
	t.Parallel()

	script := Script{
		Cadence: time.Second,
		Legs: []ScriptLeg{
			{Duration: 10 * time.Second, SpeedMPS: 10},
			{Duration: 10 * time.Second, SpeedMPS: 20},
		},
	}

	// Linear ramp from zero inside the first leg.
	require.InDelta(t, 0, script.speedAt(0), 1e-9)
	require.InDelta(t, 5, script.speedAt(5*time.Second), 1e-9)

	// Second leg ramps from the previous target.
	require.InDelta(t, 10, script.speedAt(10*time.Second), 1e-9)
	require.InDelta(t, 15, script.speedAt(15*time.Second), 1e-9)

	// Non-looping scripts hold the final speed.
	require.InDelta(t, 20, script.speedAt(25*time.Second), 1e-9)

	// Looping scripts wrap around.
	script.Loop = true
	require.InDelta(t, 5, script.speedAt(25*time.Second), 1e-9)
}

// TestScriptValidate checks leg validation and the cadence default.
func TestScriptValidate(t *testing.T) {
	t.Parallel()

	script := Script{}
	require.Error(t, script.validate())

	script = Script{
		Legs: []ScriptLeg{{Duration: -time.Second, SpeedMPS: 1}},
	}
	require.Error(t, script.validate())

	script = Script{
		Legs: []ScriptLeg{{Duration: time.Second, SpeedMPS: -1}},
	}
	require.Error(t, script.validate())

	script = Script{
		Legs: []ScriptLeg{{Duration: time.Second, SpeedMPS: 1}},
	}
	require.NoError(t, script.validate())
	require.Equal(t, DefaultSimCadence, script.Cadence)
}

// TestLoadScript verifies YAML parsing of drive scripts.
func TestLoadScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "drive.yaml")

	contents := []byte(`cadence: 500ms
loop: true
legs:
  - duration: 10s
    speed_mps: 14
  - duration: 5s
    speed_mps: 22
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, script.Cadence)
	require.True(t, script.Loop)
	require.Len(t, script.Legs, 2)
	require.Equal(t, 15*time.Second, script.duration())

	// Missing file.
	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
