// Package status holds the current session Status for readers outside the
// ingest loop.
//
// The MemoryRepository is intentionally the only implementation: the monitor
// keeps no persisted state, so the repository exists to decouple the single
// evaluation goroutine from concurrent gRPC readers.
package status
