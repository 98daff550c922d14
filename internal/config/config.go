package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds how long in-flight requests may take to
	// drain after SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`

	ReadHeaderTimeoutSeconds int `mapstructure:"read_header_timeout_seconds" validate:"gt=0"`
}

// MetricsConfig controls what the /metrics endpoint exposes.
type MetricsConfig struct {
	// IncludeRuntime registers the Go runtime and process collectors
	// alongside the HTTP request metrics.
	IncludeRuntime bool `mapstructure:"include_runtime"`
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ReadHeaderTimeout returns the request header read timeout as a duration.
func (c ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}
