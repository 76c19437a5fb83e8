package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/logger"
	"github.com/oshokin/drivesafe/internal/service/common"
	"github.com/oshokin/drivesafe/internal/source"
)

// Options configures the drive simulator.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Broker provides an optional MQTT broker override.
	Broker string
	// Topic provides an optional telemetry topic override.
	Topic string
	// ScenarioFile is an optional YAML drive script; the built-in drive is
	// played when empty.
	ScenarioFile string
	// DeviceID identifies the simulated device in published messages.
	DeviceID string
}

// errBrokerRequired is returned when no broker is configured for publishing.
var errBrokerRequired = errors.New("mqtt broker must be provided")

// Run plays a drive script and publishes the resulting samples as telemetry
// messages. It blocks until the script ends or the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "drivesafe-sim")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	broker := cfg.MQTTBroker
	if opts.Broker != "" {
		broker = opts.Broker
	}

	if broker == "" {
		return errBrokerRequired
	}

	topic := cfg.MQTTTopic
	if opts.Topic != "" {
		topic = opts.Topic
	}

	if topic == "" {
		topic = config.DefaultMQTTTopic
	}

	deviceID := opts.DeviceID
	if deviceID == "" {
		actor, err := common.DetectActor()
		if err != nil {
			return fmt.Errorf("detect actor: %w", err)
		}

		deviceID = "sim-" + actor.GetHostname()
	}

	scenarioFile := cfg.ScenarioFile
	if opts.ScenarioFile != "" {
		scenarioFile = opts.ScenarioFile
	}

	script := source.DefaultScript()
	if scenarioFile != "" {
		script, err = source.LoadScript(scenarioFile)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	}

	client, err := source.ConnectMQTT(broker, deviceID)
	if err != nil {
		return fmt.Errorf("connect mqtt broker: %w", err)
	}

	defer source.DisconnectMQTT(client)

	logger.InfoKV(ctx, "Publishing simulated drive",
		"broker", broker,
		"topic", topic,
		"device_id", deviceID)

	sampleSource := source.NewSimSource(script)

	runErr := sampleSource.Run(ctx, func(sample source.Sample) {
		payload, err := source.MarshalTelemetry(deviceID, sample)
		if err != nil {
			logger.ErrorKV(ctx, "Failed to encode telemetry", "error", err)

			return
		}

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		if err := token.Error(); err != nil {
			logger.ErrorKV(ctx, "Failed to publish telemetry", "topic", topic, "error", err)
		}
	})

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("play scenario: %w", runErr)
	}

	return nil
}
