// Package config loads environment-based configuration into tagged structs.
//
// Every component of the service declares its own Config struct with `env`
// tags and loads it through Load or MustLoad at startup. A .env file in the
// working directory is picked up automatically for local development.
package config
