package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable effectively unset, since the loader
// ignores empty environment values.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":                        "",
		"TASKAPI_SERVER_LOG_LEVEL":                   "",
		"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS":    "",
		"TASKAPI_SERVER_READ_HEADER_TIMEOUT_SECONDS": "",
		"TASKAPI_METRICS_INCLUDE_RUNTIME":            "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8000, cfg.Server.Port, "Default server port should be 8000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout())
	assert.True(t, cfg.Metrics.IncludeRuntime, "Runtime collectors should be enabled by default")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":                        "9090",
		"TASKAPI_SERVER_LOG_LEVEL":                   "DEBUG",
		"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS":    "3",
		"TASKAPI_SERVER_READ_HEADER_TIMEOUT_SECONDS": "2",
		"TASKAPI_METRICS_INCLUDE_RUNTIME":            "false",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be normalized to lower case")
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout())
	assert.False(t, cfg.Metrics.IncludeRuntime)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"TASKAPI_SERVER_PORT": "999999",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"TASKAPI_SERVER_LOG_LEVEL": "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative shutdown timeout",
			envVars: map[string]string{
				"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "-1",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Non-numeric port",
			envVars: map[string]string{
				"TASKAPI_SERVER_PORT": "not-a-port",
			},
			errorSubstring: "failed to unmarshal config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
