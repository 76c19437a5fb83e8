// Package speed contains the core domain logic of the overspeed monitor.
//
// It defines the two-valued alert State (Armed/Triggered), the Evaluate
// function that turns a raw speed sample and a configured limit into display
// speed, alert state and the one-shot cue decision, and the Status session
// snapshot with Clone helpers to avoid leaking internal references.
package speed
