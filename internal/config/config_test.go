package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// TestValidate checks required fields and per-source validations.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil configuration is rejected, not dereferenced.
	err := Validate(nil)
	require.ErrorIs(t, err, errConfigIsNotSet)

	// Missing socket.
	cfg := new(Config)

	err = Validate(cfg)
	require.Error(t, err)

	// Bad socket.
	cfg = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Defaults are applied for the gpsd source.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, SourceGPSD, cfg.Source)
	require.Equal(t, DefaultGPSDAddress, cfg.GPSDAddress)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultCueDuration, cfg.CueDuration)
	require.NotNil(t, cfg.LimitKmh)
	require.Equal(t, speed.DefaultLimitKmh, *cfg.LimitKmh)

	// An explicit zero limit means any movement triggers and must survive
	// validation untouched.
	zero := 0
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		LimitKmh:      &zero,
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.NotNil(t, cfg.LimitKmh)
	require.Equal(t, 0, *cfg.LimitKmh)

	// mqtt source needs a broker.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		Source:        SourceMQTT,
	}

	err = Validate(cfg)
	require.Error(t, err)

	// nmea source needs a device.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		Source:        SourceNMEA,
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Unknown source is rejected.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		Source:        "carrier-pigeon",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Alert publishing without a broker is rejected.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
		Source:        SourceSim,
		AlertsTopic:   "drivesafe/alerts",
	}

	err = Validate(cfg)
	require.Error(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	limit := 90
	cfg := &Config{
		ServerAddress: "127.0.0.1:50051",
		Source:        SourceMQTT,
		MQTTBroker:    "tcp://127.0.0.1:1883",
		MQTTTopic:     "drivesafe/telemetry",
		LimitKmh:      &limit,
		Timeout:       3 * time.Second,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.MQTTBroker, loaded.MQTTBroker)
	require.NotNil(t, loaded.LimitKmh)
	require.Equal(t, 90, *loaded.LimitKmh)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadExplicitZeroLimit ensures a stored zero limit is loaded as zero,
// not replaced with the default.
func TestLoadExplicitZeroLimit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	data := "server_addr: 127.0.0.1:0\nlimit_kmh: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.LimitKmh)
	require.Equal(t, 0, *loaded.LimitKmh)
}
