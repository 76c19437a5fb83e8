// Package version exposes build metadata shared by the drivesafe binaries.
//
// Variables Version, Commit, and BuildTime are stamped via Go ldflags by the
// release pipeline; local builds fall back to placeholder values.
// Short and Full render the version string for CLI output and startup logs,
// and every drivesafe command attaches the same `version` subcommand through
// AttachCobraVersionCommand.
package version
