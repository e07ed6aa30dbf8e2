package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	return m
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})
	assert.Equal(t, logger.Handler(), slog.Default().Handler())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("insight generated")
	assert.Zero(t, buf.Len())

	logger.Warn("generation attempt failed")
	assert.Equal(t, "WARN", decodeLine(t, &buf)["level"])
}

func TestNewLogger_SourceOnlyInText(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	newLogger(&text, config.LogConfig{Format: "text"}).Info("hello")
	newLogger(&js, config.LogConfig{Format: "JSON"}).Info("hello")

	assert.True(t, strings.Contains(text.String(), "source="))
	assert.NotContains(t, decodeLine(t, &js), "source")
}

func TestNewLogger_ContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Format: "json"}).With("service", "insight")

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	ctx = ctxutil.WithTrigger(ctx, ctxutil.TriggerCron)
	logger.InfoContext(ctx, "insight generated")

	m := decodeLine(t, &buf)
	assert.Equal(t, "req-42", m["request_id"])
	assert.Equal(t, "cron", m["trigger"])
	assert.Equal(t, "insight", m["service"])
	assert.NotContains(t, m, "user_id")

	buf.Reset()
	logger.Info("no context")
	assert.NotContains(t, decodeLine(t, &buf), "request_id")
}

func TestNewLogger_DoesNotRepeatExplicitAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Format: "json"})

	ctx := ctxutil.WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "http.request", slog.String("request_id", "req-1"))

	assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
}

func TestNewLogger_TraceID(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Format: "json"}).InfoContext(ctx, "generation.attempt")

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", decodeLine(t, &buf)["trace_id"])
}
