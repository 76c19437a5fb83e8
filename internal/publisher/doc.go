// Package publisher emits overspeed events to external consumers.
//
// The MQTT implementation publishes a JSON event when the session enters or
// leaves the triggered state, reusing the broker connection of the mqtt
// sample source. Publishing is optional and disabled without a topic.
package publisher
