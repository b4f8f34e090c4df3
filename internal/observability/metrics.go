package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics holds custom metrics for the REST surface.
type HTTPMetrics struct {
	requestDuration metric.Float64Histogram
	requestCounter  metric.Int64Counter
	errorCounter    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
	listingRows     metric.Int64Histogram
}

// InitHTTPMetrics initializes request-level metrics on the global meter.
func InitHTTPMetrics() (*HTTPMetrics, error) {
	meter := otel.Meter("newsboard")

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("Duration of HTTP requests in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	errorCounter, err := meter.Int64Counter(
		"http.errors.total",
		metric.WithDescription("Total number of HTTP error responses"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create error counter: %w", err)
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.requests.active",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active requests counter: %w", err)
	}

	listingRows, err := meter.Int64Histogram(
		"listing.rows.returned",
		metric.WithDescription("Number of rows returned by list endpoints"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing rows histogram: %w", err)
	}

	return &HTTPMetrics{
		requestDuration: requestDuration,
		requestCounter:  requestCounter,
		errorCounter:    errorCounter,
		activeRequests:  activeRequests,
		listingRows:     listingRows,
	}, nil
}

// RecordRequest records one completed request with its duration and status.
func (m *HTTPMetrics) RecordRequest(ctx context.Context, duration time.Duration, method string, status int) {
	attrs := []attribute.KeyValue{
		attribute.String("method", method),
		attribute.Int("status", status),
	}

	m.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

	if status >= 400 {
		m.errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordListingRows records the page size served by a list endpoint.
func (m *HTTPMetrics) RecordListingRows(ctx context.Context, rows int64, entity string) {
	m.listingRows.Record(ctx, rows, metric.WithAttributes(
		attribute.String("entity", entity),
	))
}

// IncrementActiveRequests increments the in-flight request counter.
func (m *HTTPMetrics) IncrementActiveRequests(ctx context.Context) {
	m.activeRequests.Add(ctx, 1)
}

// DecrementActiveRequests decrements the in-flight request counter.
func (m *HTTPMetrics) DecrementActiveRequests(ctx context.Context) {
	m.activeRequests.Add(ctx, -1)
}
