// Package limit implements the drivesafe-limit command.
//
// The command connects to the monitor server and keeps pushing the requested
// speed limit until the server confirms it. Input that does not parse as an
// integer is coerced to zero rather than rejected.
package limit
