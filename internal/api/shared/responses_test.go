package shared

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefaultLogs installs a debug-level text logger as the default for the test.
func captureDefaultLogs(t *testing.T) *strings.Builder {
	t.Helper()

	var logBuf strings.Builder
	oldLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(oldLogger) })

	return &logBuf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusCreated,
			data:         map[string]interface{}{"id": 1},
			expectedBody: `{"id":1}`,
		},
		{
			name:         "empty array",
			status:       http.StatusOK,
			data:         []int{},
			expectedBody: `[]`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	logBuf := captureDefaultLogs(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	// Channels cannot be JSON encoded.
	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks/9", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Task not found"}`, w.Body.String())
}

func TestRespondWithValidationErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	w := httptest.NewRecorder()

	RespondWithValidationErrors(w, req, []ValidationErrorDetail{
		{Loc: []string{"body", "title"}, Msg: "field required", Type: "value_error.missing"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t,
		`{"detail":[{"loc":["body","title"],"msg":"field required","type":"value_error.missing"}]}`,
		w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			message:          "Internal Server Error",
			err:              errors.New("store exploded"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error",
			statusCode:       http.StatusNotFound,
			message:          "Task not found",
			err:              errors.New("entity not found: task"),
			expectedLogLevel: "DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf := captureDefaultLogs(t)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)

			assert.Equal(t, tc.statusCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.message, response.Detail)
			assert.NotContains(t, w.Body.String(), tc.err.Error(), "raw error must not reach the client")

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, "level="+tc.expectedLogLevel)
			assert.Contains(t, logOutput, "error_type=")
		})
	}
}
