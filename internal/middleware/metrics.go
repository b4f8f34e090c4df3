package middleware

import (
	"net/http"
	"time"

	"newsboard/internal/observability"
)

// MetricsMiddleware records request counts, durations, and in-flight gauge
// for every request. A nil metrics handle disables recording.
func MetricsMiddleware(metrics *observability.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.IncrementActiveRequests(r.Context())
			defer metrics.DecrementActiveRequests(r.Context())

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(wrapped, r)

			metrics.RecordRequest(r.Context(), time.Since(start), r.Method, wrapped.statusCode)
		})
	}
}
