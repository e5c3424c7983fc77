package rest_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarcredit/credit-service/internal/infrastructure/persistence/memory"
	"github.com/stellarcredit/credit-service/internal/presentation/rest"
	"github.com/stellarcredit/credit-service/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestMux(t *testing.T, store storage.Store, metrics http.Handler) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	rest.NewHealthHandler("credit-service", store, metrics, testLogger()).RegisterRoutes(mux)
	return mux
}

// brokenStore fails every read, standing in for an unreachable backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, storage.Key, any) error { return fmt.Errorf("dial refused") }
func (brokenStore) Put(context.Context, storage.Key, any) error { return fmt.Errorf("dial refused") }
func (brokenStore) PutIfAbsent(context.Context, storage.Key, any) error {
	return fmt.Errorf("dial refused")
}
func (brokenStore) Renew(context.Context, storage.Key, uint64, uint64) error {
	return fmt.Errorf("dial refused")
}
func (brokenStore) Allocate(context.Context, storage.Key, func(uint64) (storage.Key, any, error)) (uint64, error) {
	return 0, fmt.Errorf("dial refused")
}
func (brokenStore) Close() error { return nil }

func TestHealthHandler_Liveness(t *testing.T) {
	mux := newTestMux(t, memory.NewStore(storage.NewManualClock(1)), nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), "credit-service")
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("empty store is ready", func(t *testing.T) {
		mux := newTestMux(t, memory.NewStore(storage.NewManualClock(1)), nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ready"`)
	})

	t.Run("unreachable store is unavailable", func(t *testing.T) {
		mux := newTestMux(t, brokenStore{}, nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "dial refused")
	})
}

func TestHealthHandler_Metrics(t *testing.T) {
	t.Run("registered when a handler is supplied", func(t *testing.T) {
		metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		mux := newTestMux(t, memory.NewStore(storage.NewManualClock(1)), metrics)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent without one", func(t *testing.T) {
		mux := newTestMux(t, memory.NewStore(storage.NewManualClock(1)), nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
