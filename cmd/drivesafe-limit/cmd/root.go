package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/service/limit"
	"github.com/oshokin/drivesafe/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from the configuration.
	serverAddress string

	// rootCmd represents the base command for updating the speed limit.
	rootCmd = &cobra.Command{
		Use:   "drivesafe-limit <limit-kmh>",
		Short: "Set the speed limit on the monitor.",
		Long: `Pushes a new speed limit to the monitor server.

The limit is taken exactly as typed. Values that do not parse as an integer
are coerced to zero, which makes any movement trigger the alert.
Requests are retried every second until the server confirms the new limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return limit.Run(ctx, &limit.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				RawLimit:      args[0],
			})
		},
	}
)

// Execute runs the drivesafe-limit CLI and exits with non-zero status on error.
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
}
