package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/logger"
	"github.com/oshokin/drivesafe/internal/service/monitor"
	"github.com/oshokin/drivesafe/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// silent disables the audible cue.
	silent bool
	// logLevel controls logger verbosity.
	logLevel string

	// rootCmd represents the base command for running the speed monitor.
	rootCmd = &cobra.Command{
		Use:   "drivesafe-server [listen-address]",
		Short: "Run the speed monitor and its gRPC API.",
		Long: `Starts the speed monitor that evaluates incoming speed samples against the
configured limit and serves the gRPC status API.

Samples are read from the source selected in the configuration file (gpsd,
nmea, mqtt or sim). Crossing the limit fires a single audible cue and keeps
the session triggered until the speed drops back under the limit.
Only the port from ServerAddress config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &monitor.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				Silent:        silent,
			}

			return monitor.Run(ctx, options)
		},
	}
)

// Execute runs the drivesafe-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "disable the audible cue")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}
