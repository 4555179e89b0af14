package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/newindiatimbers8/new-india-timber-sub003/internal/platform/requestctx"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	ctx = requestctx.WithTrace(ctx, requestctx.TraceInfo{TraceID: "abc123"})
	rec := httptest.NewRecorder()

	WriteError(ctx, rec, NewError("menu_invalid", "menu failed\nvalidation", http.StatusUnprocessableEntity).
		WithDetails(map[string]any{"score": 60}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "menu_invalid", body["error"])
	require.Equal(t, "menu failed validation", body["message"])
	require.EqualValues(t, 422, body["status"])
	require.Equal(t, "req-1", body["request_id"])
	require.Equal(t, "abc123", body["trace_id"])
	require.Equal(t, map[string]any{"score": float64(60)}, body["details"])
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	t.Parallel()

	err := NewError("boom", "", 0)
	rec := httptest.NewRecorder()
	WriteError(context.Background(), rec, err)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "request_id")
}
