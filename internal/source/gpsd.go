package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/oshokin/drivesafe/internal/logger"
)

const (
	// gpsdDialTimeout bounds a single connection attempt.
	gpsdDialTimeout = 2 * time.Second
	// gpsdInitialBackoff is the reconnect delay after the first failure.
	gpsdInitialBackoff = 250 * time.Millisecond
	// gpsdMaxBackoff caps the reconnect delay.
	gpsdMaxBackoff = 10 * time.Second
)

// gpsdWatchCommand enables JSON streaming reports.
// scaled=true yields SI units, so TPV speed arrives in m/s.
const gpsdWatchCommand = "?WATCH={\"enable\":true,\"json\":true,\"scaled\":true}\n"

// GPSDSource subscribes to a gpsd daemon over TCP and emits the speed from
// TPV reports. Connection loss is reported once per outage; the source keeps
// reconnecting with capped backoff until the context is canceled.
type GPSDSource struct {
	// addr is the host:port of the gpsd daemon.
	addr string
}

// NewGPSDSource creates a source reading from gpsd at the provided address.
func NewGPSDSource(addr string) *GPSDSource {
	return &GPSDSource{addr: addr}
}

// Name returns the source name used in logs and metrics.
func (s *GPSDSource) Name() string {
	return "gpsd"
}

// Run connects to gpsd and emits samples until the context is canceled.
func (s *GPSDSource) Run(ctx context.Context, emit func(Sample)) error {
	var (
		backoff      = gpsdInitialBackoff
		downReported bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, err := s.dial(ctx)
		if err != nil {
			// Report the outage once, then retry quietly until it clears.
			if !downReported {
				logger.WarnKV(ctx, "Unable to reach gpsd", "address", s.addr, "error", err)

				downReported = true
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}

			if backoff < gpsdMaxBackoff {
				backoff *= 2
			}

			continue
		}

		downReported = false
		backoff = gpsdInitialBackoff

		logger.InfoKV(ctx, "Connected to gpsd", "address", s.addr)

		if err := s.consume(ctx, conn, emit); err != nil {
			logger.WarnKV(ctx, "Lost gpsd stream", "address", s.addr, "error", err)
		}

		_ = conn.Close()
	}
}

// dial connects to the gpsd daemon.
func (s *GPSDSource) dial(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: gpsdDialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("dial gpsd: %w", err)
	}

	return conn, nil
}

// consume enables streaming and emits one sample per TPV report carrying a
// speed. It returns when the stream ends or the context is canceled.
func (s *GPSDSource) consume(ctx context.Context, conn net.Conn, emit func(Sample)) error {
	if _, err := conn.Write([]byte(gpsdWatchCommand)); err != nil {
		return fmt.Errorf("enable gpsd watch: %w", err)
	}

	// Close the connection on cancel so the blocking read unblocks.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 256*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sample, ok, err := parseTPVLine(line)
		if err != nil {
			logger.DebugKV(ctx, "Skipping malformed gpsd report", "error", err)

			continue
		}

		if ok {
			emit(sample)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read gpsd stream: %w", err)
	}

	return io.EOF
}

// gpsdTPV is the subset of a gpsd TPV report the monitor consumes.
type gpsdTPV struct {
	Class   string   `json:"class"`
	Time    string   `json:"time"`
	SpeedMS *float64 `json:"speed"`
}

// parseTPVLine extracts a sample from a single gpsd JSON report.
// Reports of other classes and TPV reports without a speed yield ok=false.
func parseTPVLine(line string) (Sample, bool, error) {
	var tpv gpsdTPV
	if err := json.Unmarshal([]byte(line), &tpv); err != nil {
		return Sample{}, false, fmt.Errorf("decode gpsd report: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(tpv.Class), "TPV") || tpv.SpeedMS == nil {
		return Sample{}, false, nil
	}

	speed := *tpv.SpeedMS
	if speed < 0 {
		speed = 0
	}

	when := time.Now().UTC()
	if ts := strings.TrimSpace(tpv.Time); ts != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			when = parsed.UTC()
		}
	}

	return Sample{Time: when, SpeedMPS: speed}, true, nil
}
