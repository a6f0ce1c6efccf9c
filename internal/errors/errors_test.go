package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("error message with cause", func(t *testing.T) {
		cause := fmt.Errorf("underlying failure")
		err := NewParsingError("bad statement row", cause)

		assert.Equal(t, "[PARSING] bad statement row: underlying failure", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("error message without cause", func(t *testing.T) {
		err := NewAppValidationError("invalid date range")
		assert.Contains(t, err.Error(), "VALIDATION")
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("context round trip", func(t *testing.T) {
		err := NewStorageError("read failed", nil).WithContext("file", "loads.csv")
		assert.Equal(t, "loads.csv", err.Context["file"])
	})

	t.Run("errors.As finds app error through wrapping", func(t *testing.T) {
		inner := NewNotFoundError("quarter")
		wrapped := fmt.Errorf("loading summary: %w", inner)

		var appErr *AppError
		require.True(t, errors.As(wrapped, &appErr))
		assert.Equal(t, ErrTypeNotFound, appErr.Type)
	})
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	pd := NewProblemDetails(
		http.StatusUnprocessableEntity,
		"/errors/data/corrupted",
		"Unprocessable Entity",
		"statement could not be parsed",
		"/api/pl",
	).WithExtension("trace_id", "req-123")

	data, err := json.Marshal(pd)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(422), decoded["status"])
	assert.Equal(t, "/errors/data/corrupted", decoded["type"])
	assert.Equal(t, "req-123", decoded["trace_id"], "extensions must be flattened into the top level")
}

func TestErrorHandler_HandleError(t *testing.T) {
	handler := NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "validation api error",
			err:        ErrValidation("start", "must be a valid date"),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeValidation,
		},
		{
			name:       "app not found error",
			err:        NewNotFoundError("report"),
			wantStatus: http.StatusNotFound,
			wantType:   TypeDataNotFound,
		},
		{
			name:       "parsing error maps to unprocessable",
			err:        NewParsingError("malformed workbook", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   TypeDataCorrupted,
		},
		{
			name:       "unknown error becomes internal",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			rec := httptest.NewRecorder()

			handler.HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var problem map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.wantType, problem["type"])
			assert.Equal(t, "/api/dashboard", problem["instance"])
		})
	}
}

func TestErrorHandler_Middleware_RecoversPanic(t *testing.T) {
	handler := NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected state")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/pl", nil)
	rec := httptest.NewRecorder()

	handler.Middleware(panicky).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "/errors/internal")
}
