package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/logger"
	pb "github.com/oshokin/drivesafe/internal/pb/v1"
	"github.com/oshokin/drivesafe/internal/service/common"
)

// Options controls the watch polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between status checks.
	PollInterval time.Duration
	// Once reports the current status a single time and exits.
	Once bool
	// Output receives the status lines, stdout when nil.
	Output io.Writer
}

// DefaultPollInterval defines the fixed polling interval for status checks.
const DefaultPollInterval = 1 * time.Second

// Run polls the monitor status and prints a readable line per check.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "drivesafe-watch")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Use default polling interval as it's not user-configurable.
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Polling speed status", "server_address", serverAddress, "interval", opts.PollInterval.String())

	// Report immediately before starting the ticker.
	if err := checkStatus(ctx, client, actor, opts.Output); err != nil {
		logger.ErrorKV(ctx, "Check status failed", "error", err)
	}

	if opts.Once {
		return nil
	}

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if err := checkStatus(ctx, client, actor, opts.Output); err != nil {
				logger.ErrorKV(ctx, "Check status failed", "error", err)
			}
		}
	}
}

// checkStatus retrieves the current status from the server and prints it.
func checkStatus(ctx context.Context, client *common.Client, actor *pb.SystemActor, out io.Writer) error {
	status, err := client.GetSpeedStatus(ctx, actor)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, FormatStatus(status)); err != nil {
		return fmt.Errorf("write status: %w", err)
	}

	return nil
}

// FormatStatus renders a single human-readable status line.
func FormatStatus(status *pb.SpeedStatusResponse) string {
	if status == nil {
		return "<nil status>"
	}

	verdict := "All good!"
	if status.GetState() == pb.AlertState_ALERT_STATE_TRIGGERED {
		verdict = "SLOW DOWN!"
	}

	// Extract timestamp with fallback to current time.
	timestamp := time.Now().Format(time.RFC3339)
	if ts := status.GetTimestamp(); ts != nil {
		timestamp = ts.AsTime().Format(time.RFC3339)
	}

	return fmt.Sprintf("%s  %d km/h (limit %d km/h) at %s",
		verdict, status.GetSpeedKmh(), status.GetLimitKmh(), timestamp)
}
