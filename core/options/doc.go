// Package options holds the command-line configuration and its error type.
//
// The Config struct carries the port supplied via -p/--port (default 8080).
// The value is parsed and reported only; nothing listens on it.
//
// Any problem with the command line is reported as an *ArgumentError, which
// callers detect with errors.As to choose the usage exit path.
package options
