// Package source provides the speed sample subscriptions consumed by the
// monitor.
//
// Every implementation is a cancellable subscription: Run blocks, emitting
// samples until the context is canceled, so sample delivery starts and stops
// with the monitor lifecycle. Available sources:
//   - gpsd: JSON stream from a gpsd daemon over TCP
//   - nmea: NMEA 0183 sentences from a serial character device
//   - mqtt: JSON telemetry messages from an MQTT broker
//   - sim:  deterministic scripted drive for demos and tests
package source
