package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// EventType distinguishes the two overspeed transitions.
type EventType string

const (
	// EventOverspeedEntered is published on the armed-to-triggered edge.
	EventOverspeedEntered EventType = "overspeed_entered"
	// EventOverspeedCleared is published when the session re-arms.
	EventOverspeedCleared EventType = "overspeed_cleared"
)

// Publisher emits overspeed transition events.
type Publisher interface {
	PublishEvent(ctx context.Context, event EventType, status *speed.Status) error
}

// eventMessage is the JSON payload published to the alerts topic.
type eventMessage struct {
	Event     EventType `json:"event"`
	SpeedKmh  int       `json:"speed_kmh"`
	LimitKmh  int       `json:"limit_kmh"`
	Timestamp int64     `json:"timestamp"`
}

// MQTTPublisher publishes overspeed events to an MQTT topic.
type MQTTPublisher struct {
	// client is the shared broker connection.
	client mqtt.Client
	// topic is the alerts topic events are published to.
	topic string
}

// NewMQTTPublisher creates a publisher for the provided topic through an
// already connected client.
func NewMQTTPublisher(client mqtt.Client, topic string) *MQTTPublisher {
	return &MQTTPublisher{
		client: client,
		topic:  topic,
	}
}

// PublishEvent marshals and publishes a single transition event.
func (p *MQTTPublisher) PublishEvent(_ context.Context, event EventType, status *speed.Status) error {
	payload, err := marshalEvent(event, status)
	if err != nil {
		return err
	}

	token := p.client.Publish(p.topic, 1, false, payload)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", p.topic, err)
	}

	return nil
}

// marshalEvent builds the JSON payload for a transition event.
func marshalEvent(event EventType, status *speed.Status) ([]byte, error) {
	msg := eventMessage{
		Event:     event,
		SpeedKmh:  status.SpeedKmh,
		LimitKmh:  status.LimitKmh,
		Timestamp: status.Timestamp.Unix(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}

	return payload, nil
}
