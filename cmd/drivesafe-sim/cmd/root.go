package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/service/sim"
	"github.com/oshokin/drivesafe/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// broker overrides the MQTT broker from the configuration.
	broker string
	// topic overrides the telemetry topic from the configuration.
	topic string
	// scenarioFile is an optional YAML drive script.
	scenarioFile string
	// deviceID identifies the simulated device.
	deviceID string

	// rootCmd represents the base command for publishing a simulated drive.
	rootCmd = &cobra.Command{
		Use:   "drivesafe-sim",
		Short: "Publish a simulated drive as speed telemetry.",
		Long: `Plays a drive script and publishes the resulting speed samples to the
telemetry topic on the MQTT broker.

A monitor configured with the mqtt source consumes these samples exactly as
it would consume real device telemetry, which makes the simulator useful for
exercising the alert path without a GPS receiver. Without a scenario file a
built-in city drive crossing 60 km/h is played in a loop.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return sim.Run(ctx, &sim.Options{
				ConfigPath:   cfgPath,
				Broker:       broker,
				Topic:        topic,
				ScenarioFile: scenarioFile,
				DeviceID:     deviceID,
			})
		},
	}
)

// Execute runs the drivesafe-sim CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&broker, "broker", "b", "", "mqtt broker override")
	rootCmd.Flags().StringVarP(&topic, "topic", "t", "", "telemetry topic override")
	rootCmd.Flags().StringVarP(&scenarioFile, "scenario", "f", "", "path to YAML drive script")
	rootCmd.Flags().StringVarP(&deviceID, "device-id", "d", "", "device identifier in published messages")
}
