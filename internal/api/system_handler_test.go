package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 8, 30, 0, 123000000, time.UTC)
	h := NewSystemHandler(func() time.Time { return fixed }, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2024-03-09T08:30:00.123Z"}`, rec.Body.String())
}

func TestHealthDefaultClock(t *testing.T) {
	h := NewSystemHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestRoot(t *testing.T) {
	h := NewSystemHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Welcome to Task Management API",
		"version": "1.0.0",
		"endpoints": {"health": "/health", "tasks": "/tasks", "metrics": "/metrics"}
	}`, rec.Body.String())
}
