package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/insight-calendar/internal/config"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Format "json" is meant for production; anything else gives text
// output with source locations. Unknown levels mean info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var base slog.Handler = slog.NewTextHandler(w, opts)
	if json {
		base = slog.NewJSONHandler(w, opts)
	}
	return slog.New(contextHandler{Handler: base})
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// contextHandler stamps records with the identity values carried by ctx
// (request id, user id, trigger) and the active trace. Keys the record
// already has are not repeated.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.Handler.Handle(ctx, r)
	}

	present := make(map[string]bool, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		present[a.Key] = true
		return true
	})

	for _, a := range ctxutil.LogAttrs(ctx) {
		if !present[a.Key] {
			r.AddAttrs(a)
		}
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() && !present["trace_id"] {
		r.AddAttrs(slog.String("trace_id", sc.TraceID().String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}
