package limit

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/domain/speed"
	"github.com/oshokin/drivesafe/internal/logger"
	pb "github.com/oshokin/drivesafe/internal/pb/v1"
	"github.com/oshokin/drivesafe/internal/service/common"
)

// Options configures the limit push operation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// RawLimit is the limit exactly as the user typed it. Values that do not
	// parse as an integer are coerced to zero, matching the session behavior
	// of treating unreadable input as the strictest possible limit.
	RawLimit string
}

// defaultPushInterval defines retry delay when pushing the limit to the server.
const defaultPushInterval = 1 * time.Second

// Run pushes the desired speed limit with retry logic until the server
// confirms it or the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "drivesafe-limit")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Coerce the raw input; unreadable text becomes a zero limit.
	desiredLimit := speed.ParseLimit(opts.RawLimit)
	if desiredLimit == 0 && opts.RawLimit != "0" {
		logger.WarnKV(ctx, "Limit input did not parse, pushing zero", "raw_limit", opts.RawLimit)
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	// Connect to the monitor server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(
		ctx,
		"Pushing desired speed limit",
		"server_address",
		serverAddress,
		"limit_kmh",
		desiredLimit,
	)

	// attempt tries once to change the limit, returns (completed, error).
	attempt := func() (bool, error) {
		// Request limit change from server.
		resp, err := client.SetSpeedLimit(ctx, actor, desiredLimit)
		if err != nil {
			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "SetSpeedLimit failed", "error", err)
			return false, nil
		}

		// Check if server confirmed the desired limit.
		if resp != nil && int(resp.GetLimitKmh()) == desiredLimit {
			logger.Infof(ctx, "Limit updated: %s", FormatStatus(resp))

			return true, nil
		}

		// Server responded but limit mismatch, continue retrying.
		return false, nil
	}

	// Attempt immediately before starting retry loop.
	if done, err := attempt(); err != nil {
		return err
	} else if done {
		return nil
	}

	// Setup retry timer for subsequent attempts.
	ticker := time.NewTicker(defaultPushInterval)
	defer ticker.Stop()

	// Retry loop until success or cancellation.
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := attempt()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// FormatStatus converts a status response to a readable log message.
func FormatStatus(status *pb.SpeedStatusResponse) string {
	if status == nil {
		return "<nil status>"
	}

	// Extract timestamp with fallback for missing data.
	timestamp := "<unknown>"
	if t := status.GetTimestamp(); t != nil {
		timestamp = t.AsTime().Format(time.RFC3339)
	}

	// Format actor as username@hostname with fallback.
	actor := "<unknown>"
	if status.GetLastActor() != nil {
		actor = fmt.Sprintf("%s@%s", status.GetLastActor().GetUsername(), status.GetLastActor().GetHostname())
	}

	return fmt.Sprintf("%d km/h limit, %d km/h measured, set by %s (%s)",
		status.GetLimitKmh(), status.GetSpeedKmh(), actor, timestamp)
}
