// Package logger builds configured slog.Logger instances with consistent
// attribute names across the service.
//
// Defaults are production-safe (JSON, info level); local development
// switches to text output via LOG_FORMAT=text. The attribute helpers keep
// field names uniform so log aggregation queries stay simple.
package logger
