package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/restaurant-erp/pkg/logger"
)

//nolint:paralleltest
func TestNew_RequestID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	l.With("service", "billing").DebugContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	require.Equal(t, "DEBUG", record["level"])
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "billing", record["service"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud")
	require.Error(t, err)
}
