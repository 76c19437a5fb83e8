// Package monitor implements the gRPC transport for the monitor service.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface.
package monitor
