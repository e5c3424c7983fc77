package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}

// RPCMetrics records per-method request counts and latencies for the gRPC
// surface of the credit service.
type RPCMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRPCMetrics creates the RPC instruments on the given meter provider.
func NewRPCMetrics(provider metric.MeterProvider, service string) (*RPCMetrics, error) {
	meter := provider.Meter(service)

	requests, err := meter.Int64Counter("rpc_requests_total",
		metric.WithDescription("Completed RPC requests by method and status code."))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("rpc_request_duration_seconds",
		metric.WithDescription("RPC request latency in seconds."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &RPCMetrics{requests: requests, duration: duration}, nil
}

// Record registers one completed RPC.
func (m *RPCMetrics) Record(ctx context.Context, method, code string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("code", code),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
