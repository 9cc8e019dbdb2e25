package response_test

import (
	"encoding/json"
	"errors"
	"fieldserve/shared/failure"
	"fieldserve/transport/http/response"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantKind   string
	}{
		{
			name:       "business failure keeps message",
			err:        failure.InvalidTransition("booking", "completed", "cancel"),
			wantStatus: http.StatusConflict,
			wantError:  "cannot cancel booking in status completed",
			wantKind:   "INVALID_TRANSITION",
		},
		{
			name:       "wrapped failure",
			err:        fmt.Errorf("issue: %w", failure.New(failure.KindOverApplication, "credit exceeds balance")),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "credit exceeds balance",
			wantKind:   "OVER_APPLICATION",
		},
		{
			name:       "infrastructure error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
			wantKind:   "INTERNAL",
		},
		{
			name:       "internal failure is hidden",
			err:        failure.InternalError(errors.New("dial tcp 10.0.0.1:5432")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal Server Error",
			wantKind:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, tt.wantKind, body["kind"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"id": "b-1"}, decode(t, rec)["data"])
}

func TestCannedMessages(t *testing.T) {
	tests := []struct {
		name       string
		write      func(http.ResponseWriter)
		wantStatus int
	}{
		{"limit", response.WithRequestLimitExceeded, http.StatusTooManyRequests},
		{"shutdown", response.WithPreparingShutdown, http.StatusServiceUnavailable},
		{"unhealthy", response.WithUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["message"])
		})
	}
}
