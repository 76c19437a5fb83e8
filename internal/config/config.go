package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// Config holds connection and source parameters shared by the drivesafe binaries.
type Config struct {
	// ServerAddress is the gRPC server address for monitor service connections.
	ServerAddress string `yaml:"server_addr"`
	// MetricsAddress is the HTTP listen address for the Prometheus endpoint.
	// Metrics are disabled when empty.
	MetricsAddress string `yaml:"metrics_addr"`
	// Source selects how speed samples are ingested: gpsd, nmea, mqtt or sim.
	Source string `yaml:"source"`
	// GPSDAddress is host:port of the gpsd daemon for the gpsd source.
	GPSDAddress string `yaml:"gpsd_addr"`
	// NMEADevice is the character device or file read by the nmea source.
	NMEADevice string `yaml:"nmea_device"`
	// MQTTBroker is the broker URL for the mqtt source and alert publishing.
	MQTTBroker string `yaml:"mqtt_broker"`
	// MQTTTopic is the telemetry topic consumed by the mqtt source.
	MQTTTopic string `yaml:"mqtt_topic"`
	// AlertsTopic is the topic overspeed events are published to.
	// Publishing is disabled when empty.
	AlertsTopic string `yaml:"alerts_topic"`
	// ScenarioFile is the YAML drive script consumed by the sim source.
	ScenarioFile string `yaml:"scenario_file"`
	// LimitKmh is the speed limit applied at startup. Zero is meaningful
	// (any movement triggers), so an absent value is a nil pointer and only
	// that is replaced with the default.
	LimitKmh *int `yaml:"limit_kmh"`
	// CueDuration is the length of the audible cue pulse.
	CueDuration time.Duration `yaml:"cue_duration"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "drivesafe-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultCueDuration is the default length of the audible cue pulse.
	DefaultCueDuration = 200 * time.Millisecond

	// DefaultGPSDAddress is the standard gpsd listen address.
	DefaultGPSDAddress = "127.0.0.1:2947"

	// DefaultMQTTTopic is the default telemetry topic for the mqtt source.
	DefaultMQTTTopic = "drivesafe/telemetry"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// Source names accepted by the Source field.
const (
	SourceGPSD = "gpsd"
	SourceNMEA = "nmea"
	SourceMQTT = "mqtt"
	SourceSim  = "sim"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownSource is returned when the source name is not recognised.
	errUnknownSource = errors.New("unknown sample source")
	// errBrokerRequired is returned when the mqtt source has no broker URL.
	errBrokerRequired = errors.New("mqtt broker must be provided")
	// errDeviceRequired is returned when the nmea source has no device path.
	errDeviceRequired = errors.New("nmea device must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
//
//nolint:cyclop // Field-by-field validation is flat and readable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	// Set default timeout if not specified.
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.CueDuration <= 0 {
		cfg.CueDuration = DefaultCueDuration
	}

	if cfg.LimitKmh == nil {
		defaultLimit := speed.DefaultLimitKmh
		cfg.LimitKmh = &defaultLimit
	}

	if cfg.Source == "" {
		cfg.Source = SourceGPSD
	}

	switch cfg.Source {
	case SourceGPSD:
		if cfg.GPSDAddress == "" {
			cfg.GPSDAddress = DefaultGPSDAddress
		}
	case SourceNMEA:
		if cfg.NMEADevice == "" {
			return errDeviceRequired
		}
	case SourceMQTT:
		if cfg.MQTTBroker == "" {
			return errBrokerRequired
		}

		if cfg.MQTTTopic == "" {
			cfg.MQTTTopic = DefaultMQTTTopic
		}
	case SourceSim:
		// Scenario file is optional; the sim source has a built-in script.
	default:
		return fmt.Errorf("%w: %q", errUnknownSource, cfg.Source)
	}

	// Alert publishing rides on the mqtt connection.
	if cfg.AlertsTopic != "" && cfg.MQTTBroker == "" {
		return errBrokerRequired
	}

	return nil
}
