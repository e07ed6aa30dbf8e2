// Package ctxutil carries per-call identity through context.Context: the
// request id, the caller's user id and what triggered the call (an HTTP
// request, the scheduler or an insightctl job).
package ctxutil

import (
	"context"
	"log/slog"
	"strings"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
	triggerKey
	insightDateKey
)

// Trigger values.
const (
	TriggerCron = "cron"
	TriggerCLI  = "cli"
)

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx reports false for a missing or blank id.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no id was assigned.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTrigger tags the call with what started it, e.g. TriggerCron.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey, trigger)
}

func TriggerFromCtx(ctx context.Context) string {
	t, _ := ctx.Value(triggerKey).(string)
	return t
}

// WithInsightDate records the KST date a generation call is producing.
func WithInsightDate(ctx context.Context, date string) context.Context {
	return context.WithValue(ctx, insightDateKey, date)
}

// InsightDateFromCtx reports false when no date was recorded.
func InsightDateFromCtx(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(insightDateKey).(string)
	return d, ok && d != ""
}

// LogAttrs returns the identity values present in ctx as log attributes,
// in the order request_id, user_id, trigger. Absent values are omitted.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id))
	}
	if t := TriggerFromCtx(ctx); t != "" {
		attrs = append(attrs, slog.String("trigger", t))
	}
	return attrs
}
