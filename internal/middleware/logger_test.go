package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordersvc/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Get("/orders/{order_uid}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/b563", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "/orders/b563", line["path"])
	assert.Equal(t, "/orders/{order_uid}", line["route"], "log must carry the matched pattern, not the raw id")
	assert.EqualValues(t, http.StatusNotFound, line["status"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.NotEmpty(t, line["request_id"])
}
