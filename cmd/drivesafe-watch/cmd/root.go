package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/service/watch"
	"github.com/oshokin/drivesafe/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from the configuration.
	serverAddress string
	// pollInterval controls how often the status is refreshed.
	pollInterval time.Duration
	// once reports the status a single time and exits.
	once bool

	// rootCmd represents the base command for watching the session status.
	rootCmd = &cobra.Command{
		Use:   "drivesafe-watch",
		Short: "Watch the current speed against the limit.",
		Long: `Polls the monitor server and prints one status line per check.

Each line carries a verdict ("All good!" while under the limit, "SLOW DOWN!"
while over it), the measured speed and the configured limit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return watch.Run(ctx, &watch.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				PollInterval:  pollInterval,
				Once:          once,
			})
		},
	}
)

// Execute runs the drivesafe-watch CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "monitor server address override")
	rootCmd.Flags().
		DurationVarP(&pollInterval, "interval", "i", watch.DefaultPollInterval, "interval between status checks")
	rootCmd.Flags().BoolVar(&once, "once", false, "report the status once and exit")
}
