// Package logging builds the slog loggers used across clipseek.
//
// Two output formats are supported: a compact console format for interactive
// use and line-delimited JSON for machine consumption. Field-name constants
// keep structured keys consistent between packages, and the Attr helpers
// alias log/slog constructors so call sites only import this package.
package logging
