package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestTraceSamplerForRatio(t *testing.T) {
	assert.Equal(t, sdktrace.NeverSample().Description(), traceSamplerForRatio(0).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), traceSamplerForRatio(-1).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), traceSamplerForRatio(1).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), traceSamplerForRatio(2).Description())
	assert.Equal(t,
		sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.5)).Description(),
		traceSamplerForRatio(0.5).Description())
}

func TestMeterProviderAndHTTPMetrics(t *testing.T) {
	mp, err := InitMeterProvider(Config{
		ServiceName:    "newsboard-test",
		ServiceVersion: "test",
		Environment:    "test",
	})
	require.NoError(t, err)
	defer func() {
		_ = mp.Shutdown(context.Background(), slog.Default())
	}()

	metrics, err := InitHTTPMetrics()
	require.NoError(t, err)

	// Recording must not panic on a live provider.
	ctx := context.Background()
	metrics.IncrementActiveRequests(ctx)
	metrics.RecordRequest(ctx, 5*time.Millisecond, "GET", 200)
	metrics.RecordRequest(ctx, 5*time.Millisecond, "POST", 422)
	metrics.RecordListingRows(ctx, 10, "articles")
	metrics.DecrementActiveRequests(ctx)
}

func TestBuildTraceExporterOptions_EndpointForms(t *testing.T) {
	// URL and host:port endpoints both produce a non-empty option set.
	assert.NotEmpty(t, buildTraceExporterOptions(OTLPExporterConfig{Endpoint: "https://collector:4318"}))
	assert.NotEmpty(t, buildTraceExporterOptions(OTLPExporterConfig{Endpoint: "collector:4318", Insecure: true}))
}
