package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/drivesafe/internal/logger"
)

// mqttDisconnectQuiesce is how long the client may flush in-flight work
// on shutdown, in milliseconds as the paho API expects.
const mqttDisconnectQuiesce = 250

// telemetryMessage is the JSON payload published by speed telemetry devices.
type telemetryMessage struct {
	DeviceID  string  `json:"device_id"`
	SpeedMPS  float64 `json:"speed_mps"`
	Timestamp int64   `json:"timestamp"`
}

// MQTTSource subscribes to a telemetry topic on an MQTT broker and emits
// one sample per valid message.
type MQTTSource struct {
	// client is the shared broker connection.
	client mqtt.Client
	// topic is the telemetry topic to subscribe to.
	topic string
}

// NewMQTTSource creates a source consuming the provided topic through an
// already connected client.
func NewMQTTSource(client mqtt.Client, topic string) *MQTTSource {
	return &MQTTSource{
		client: client,
		topic:  topic,
	}
}

// Name returns the source name used in logs and metrics.
func (s *MQTTSource) Name() string {
	return "mqtt"
}

// Run subscribes to the telemetry topic and blocks until the context is
// canceled. Samples are emitted from the paho delivery callback, which paho
// invokes sequentially per subscription.
func (s *MQTTSource) Run(ctx context.Context, emit func(Sample)) error {
	handler := func(_ mqtt.Client, msg mqtt.Message) {
		sample, err := parseTelemetry(msg.Payload())
		if err != nil {
			logger.DebugKV(ctx, "Skipping invalid telemetry message", "topic", msg.Topic(), "error", err)

			return
		}

		emit(sample)
	}

	token := s.client.Subscribe(s.topic, 1, handler)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.topic, err)
	}

	logger.InfoKV(ctx, "Subscribed to telemetry topic", "topic", s.topic)

	<-ctx.Done()

	if unsubscribe := s.client.Unsubscribe(s.topic); unsubscribe.Wait() && unsubscribe.Error() != nil {
		logger.WarnKV(ctx, "Unsubscribe failed", "topic", s.topic, "error", unsubscribe.Error())
	}

	return ctx.Err()
}

// parseTelemetry decodes and validates a telemetry payload.
func parseTelemetry(payload []byte) (Sample, error) {
	var msg telemetryMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Sample{}, fmt.Errorf("decode telemetry: %w", err)
	}

	if msg.DeviceID == "" {
		return Sample{}, errors.New("device_id: required")
	}

	if msg.SpeedMPS < 0 {
		return Sample{}, errors.New("speed_mps: must be non-negative")
	}

	if msg.Timestamp <= 0 {
		return Sample{}, errors.New("timestamp: must be positive")
	}

	return Sample{
		Time:     time.Unix(msg.Timestamp, 0).UTC(),
		SpeedMPS: msg.SpeedMPS,
	}, nil
}

// MarshalTelemetry encodes a sample as the telemetry wire payload.
// It is the counterpart of the mqtt source's parser, used by the drive
// simulator to publish samples.
func MarshalTelemetry(deviceID string, sample Sample) ([]byte, error) {
	msg := telemetryMessage{
		DeviceID:  deviceID,
		SpeedMPS:  sample.SpeedMPS,
		Timestamp: sample.Time.Unix(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal telemetry: %w", err)
	}

	return payload, nil
}

// ConnectMQTT establishes a connection to the broker shared by the mqtt
// source and the alert publisher.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return client, nil
}

// DisconnectMQTT closes the broker connection, allowing a short quiesce.
func DisconnectMQTT(client mqtt.Client) {
	if client != nil && client.IsConnected() {
		client.Disconnect(mqttDisconnectQuiesce)
	}
}
