package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stellarcredit/credit-service/internal/storage"
)

const readinessTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes plus the Prometheus
// metrics endpoint over HTTP.
type HealthHandler struct {
	serviceName string
	store       storage.Store
	metrics     http.Handler
	startedAt   time.Time
	logger      *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. metrics may be nil
// when no exporter is configured.
func NewHealthHandler(serviceName string, store storage.Store, metrics http.Handler, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		store:       store,
		metrics:     metrics,
		startedAt:   time.Now(),
		logger:      logger,
	}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.serviceName,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// readiness probes the storage backend with a read of the admin record. An
// unregistered admin still means the backend answered, so ErrNotFound counts
// as ready.
func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"storage": "ok"}
	status := http.StatusOK

	var probe json.RawMessage
	if err := h.store.Get(ctx, storage.AdminKey(), &probe); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.logger.WarnContext(ctx, "readiness probe failed", "error", err)
		checks["storage"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status":  statusWord(status),
		"service": h.serviceName,
		"checks":  checks,
	})
}

func statusWord(httpStatus int) string {
	if httpStatus == http.StatusOK {
		return "ready"
	}
	return "unavailable"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
