package source

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/drivesafe/internal/logger"
)

// metersPerSecondPerKnot converts NMEA ground speed (knots) to m/s.
const metersPerSecondPerKnot = 0.5144444444444445

// errVoidFix marks RMC sentences whose status field reports no valid fix.
var errVoidFix = errors.New("void fix")

// NMEASource reads NMEA 0183 sentences from a GNSS character device and
// emits the RMC speed over ground.
type NMEASource struct {
	// device is the serial device or file path to read.
	device string
}

// NewNMEASource creates a source reading from the provided device path.
func NewNMEASource(device string) *NMEASource {
	return &NMEASource{device: filepath.Clean(device)}
}

// Name returns the source name used in logs and metrics.
func (s *NMEASource) Name() string {
	return "nmea"
}

// Run opens the device and emits samples until the stream ends or the
// context is canceled.
func (s *NMEASource) Run(ctx context.Context, emit func(Sample)) error {
	f, err := os.Open(s.device)
	if err != nil {
		return fmt.Errorf("open nmea device: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	logger.InfoKV(ctx, "Reading NMEA sentences", "device", s.device)

	// Close the device on cancel so the blocking read unblocks.
	stop := context.AfterFunc(ctx, func() {
		_ = f.Close()
	})
	defer stop()

	return s.consume(ctx, f, emit)
}

// consume scans sentences from the reader and emits RMC speeds.
func (s *NMEASource) consume(ctx context.Context, r io.Reader, emit func(Sample)) error {
	scanner := bufio.NewScanner(r)
	// NMEA sentences are under 82 characters, allow headroom for chatter.
	scanner.Buffer(make([]byte, 0, 256), 4096)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "$") {
			continue
		}

		speedMPS, err := speedFromSentence(line)
		if err != nil {
			if !errors.Is(err, errVoidFix) {
				logger.DebugKV(ctx, "Skipping malformed NMEA sentence", "error", err)
			}

			continue
		}

		emit(Sample{Time: time.Now().UTC(), SpeedMPS: speedMPS})
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read nmea stream: %w", err)
	}

	return io.EOF
}

// speedFromSentence extracts the speed over ground in m/s from an RMC
// sentence. Non-RMC sentences and RMC sentences without a speed field are
// reported as void fixes.
//
// RMC fields (NMEA 0183 v2.3):
//
//	0: talker+type
//	2: status (A=active, V=void)
//	7: speed over ground (knots)
func speedFromSentence(line string) (float64, error) {
	fields, err := checksumFields(line)
	if err != nil {
		return 0, err
	}

	// Normalize GPRMC/GNRMC talker prefixes to the sentence type.
	sentenceType := fields[0]
	if len(sentenceType) > 3 {
		sentenceType = sentenceType[len(sentenceType)-3:]
	}

	if !strings.EqualFold(sentenceType, "RMC") || len(fields) < 10 {
		return 0, errVoidFix
	}

	if strings.TrimSpace(fields[2]) != "A" {
		return 0, errVoidFix
	}

	knots, err := strconv.ParseFloat(strings.TrimSpace(fields[7]), 64)
	if err != nil {
		return 0, errVoidFix
	}

	speedMPS := knots * metersPerSecondPerKnot
	if speedMPS < 0 {
		speedMPS = 0
	}

	return speedMPS, nil
}

// checksumFields verifies the sentence checksum and returns the comma-split
// payload, excluding the leading $ and the trailing checksum.
func checksumFields(line string) ([]string, error) {
	star := strings.LastIndexByte(line, '*')
	if star == -1 {
		return nil, errors.New("nmea: missing checksum")
	}

	payload := line[1:star]

	check := strings.TrimSpace(line[star+1:])
	if len(check) < 2 {
		return nil, errors.New("nmea: short checksum")
	}

	want, err := hex.DecodeString(check[:2])
	if err != nil || len(want) != 1 {
		return nil, errors.New("nmea: bad checksum")
	}

	got := byte(0)
	for i := 0; i < len(payload); i++ {
		got ^= payload[i]
	}

	if got != want[0] {
		return nil, errors.New("nmea: checksum mismatch")
	}

	return strings.Split(payload, ","), nil
}
