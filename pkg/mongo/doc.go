// Package mongo provides MongoDB connection management for the credential
// service's document store.
//
// Configuration is entirely environment-driven so the same binary runs
// unchanged across development, staging, and production. Connection retries
// smooth over transient failures during startup, and Healthcheck plugs into
// orchestration probes.
//
// The module-level repositories (modules/*/mongo.go) build on the client
// returned here; this package only owns connectivity.
package mongo
