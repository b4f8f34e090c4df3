package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_DefaultWhenAbsent(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	logger := NewLogger(Config{Level: "debug", Format: "text"})
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestIDContext(context.Background(), "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogger(Config{Level: "chatty", Format: "json"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
