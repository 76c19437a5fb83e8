// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with timeouts, utilities to
// detect the current system actor (hostname/username) for audit purposes and
// a single-instance guard for the monitor binary.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
