// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and environment variables. It gives
// the server typed access to its settings while keeping configuration
// details separate from request handling.
package config
