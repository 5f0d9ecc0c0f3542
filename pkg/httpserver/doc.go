// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and structured logging. Run blocks until the context is
// cancelled or an interrupt/TERM signal is received, then drains in-flight
// requests within the configured shutdown deadline.
package httpserver
