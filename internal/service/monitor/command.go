package monitor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	api "github.com/oshokin/drivesafe/internal/api/grpc/monitor"
	"github.com/oshokin/drivesafe/internal/config"
	"github.com/oshokin/drivesafe/internal/logger"
	"github.com/oshokin/drivesafe/internal/metrics"
	pb "github.com/oshokin/drivesafe/internal/pb/v1"
	"github.com/oshokin/drivesafe/internal/publisher"
	repository "github.com/oshokin/drivesafe/internal/repository/status"
	"github.com/oshokin/drivesafe/internal/service/common"
	"github.com/oshokin/drivesafe/internal/source"
	"github.com/oshokin/drivesafe/internal/tone"
)

// executableName is the binary name used by the single-instance guard.
const executableName = "drivesafe-server"

// Options controls the drivesafe-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// Silent disables the audible cue, leaving logs and metrics as the only alert channel.
	Silent bool
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the monitor and blocks until the context is canceled.
// It wires the configured sample source into the evaluation service and
// serves the gRPC API alongside the optional metrics endpoint.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, executableName)

	// Load configuration first to get server and source settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// The monitor owns the audio device and the gRPC port.
	if err := common.EnsureSingleInstance(executableName); err != nil {
		return err
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	// A single broker connection serves both the telemetry source and the
	// alerts publisher.
	var mqttClient mqtt.Client

	if settings.Source == config.SourceMQTT || settings.AlertsTopic != "" {
		mqttClient, err = source.ConnectMQTT(settings.MQTTBroker, executableName)
		if err != nil {
			return fmt.Errorf("connect mqtt broker: %w", err)
		}

		defer source.DisconnectMQTT(mqttClient)
	}

	sampleSource, err := buildSource(settings, mqttClient)
	if err != nil {
		return err
	}

	var player tone.Player = tone.NewConsolePlayer(nil)
	if opts.Silent {
		player = tone.NullPlayer{}
	}

	var events publisher.Publisher
	if settings.AlertsTopic != "" {
		events = publisher.NewMQTTPublisher(mqttClient, settings.AlertsTopic)
	}

	// Initialize status repository for the session state.
	repo := repository.NewMemoryRepository(nil)

	// Create the evaluation service with the configured limit.
	svc, err := newService(ctx, repo, player, events, *settings.LimitKmh, settings.CueDuration)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with the monitor service.
	grpcServer := grpc.NewServer()
	pb.RegisterMonitorServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Monitor listening",
		"listen_address", listenAddress,
		"source", sampleSource.Name(),
		"limit_kmh", *settings.LimitKmh)

	// Feed the evaluation service from the sample source. A dead source is
	// logged but does not take the API down; clients can still read and
	// change the limit.
	go func() {
		runErr := sampleSource.Run(ctx, func(sample source.Sample) {
			svc.Ingest(ctx, sampleSource.Name(), sample)
		})
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			metrics.SourceErrorsTotal.WithLabelValues(sampleSource.Name()).Inc()
			logger.Errorf(ctx, "Sample source %s stopped: %v", sampleSource.Name(), runErr)
		}
	}()

	metricsServer := startMetricsServer(ctx, settings)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")

		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
			defer cancel()

			_ = metricsServer.Shutdown(shutdownCtx)
		}

		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// buildSource constructs the sample source selected in the settings.
func buildSource(settings *config.Config, mqttClient mqtt.Client) (source.Source, error) {
	switch settings.Source {
	case config.SourceGPSD:
		return source.NewGPSDSource(settings.GPSDAddress), nil
	case config.SourceNMEA:
		return source.NewNMEASource(settings.NMEADevice), nil
	case config.SourceMQTT:
		return source.NewMQTTSource(mqttClient, settings.MQTTTopic), nil
	case config.SourceSim:
		script := source.DefaultScript()

		if settings.ScenarioFile != "" {
			var err error

			script, err = source.LoadScript(settings.ScenarioFile)
			if err != nil {
				return nil, fmt.Errorf("load scenario: %w", err)
			}
		}

		return source.NewSimSource(script), nil
	default:
		return nil, fmt.Errorf("unknown sample source %q", settings.Source)
	}
}

// startMetricsServer exposes the Prometheus endpoint when configured.
// Returns nil when metrics are disabled.
func startMetricsServer(ctx context.Context, settings *config.Config) *http.Server {
	if settings.MetricsAddress == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	metricsServer := &http.Server{
		Addr:              settings.MetricsAddress,
		Handler:           mux,
		ReadHeaderTimeout: settings.Timeout,
	}

	go func() {
		logger.InfoKV(ctx, "Metrics endpoint listening", "metrics_address", settings.MetricsAddress)

		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "Metrics server stopped: %v", err)
		}
	}()

	return metricsServer
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
