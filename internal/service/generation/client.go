// Package generation turns a text model into a source of validated daily
// insights: it builds the prompt, parses the reply and retries with a
// linear backoff.
package generation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/insight-calendar/internal/domain"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

const DefaultMaxAttempts = 3

type textModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client generates insights through a text model.
type Client struct {
	model       textModel
	backoffStep time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	tracer      trace.Tracer
	log         *slog.Logger
}

// NewClient creates a generation client. The wait before retry n is
// n*backoffStep.
func NewClient(log *slog.Logger, model textModel, backoffStep time.Duration) *Client {
	return &Client{
		model:       model,
		backoffStep: backoffStep,
		sleep:       sleepCtx,
		tracer:      otel.Tracer("github.com/heartmarshall/insight-calendar/internal/service/generation"),
		log:         log.With("service", "generation"),
	}
}

// Generate makes a single attempt for date.
func (c *Client) Generate(ctx context.Context, date string) (domain.GeneratedInsight, error) {
	ctx, span := c.tracer.Start(ctx, "generation.attempt", trace.WithAttributes(attribute.String("insight.date", date)))
	defer span.End()

	reply, err := c.model.Complete(ctxutil.WithInsightDate(ctx, date), buildPrompt(date))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return domain.GeneratedInsight{}, err
	}

	out, strategy, err := parseReply(reply)
	span.SetAttributes(attribute.String("generation.extractor", strategy), attribute.Int("generation.reply_len", len(reply)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return domain.GeneratedInsight{}, err
	}
	return out, nil
}

// GenerateWithRetry calls Generate up to maxAttempts times. Waits grow
// linearly and there is no wait after the last attempt. Exhaustion yields a
// *domain.GenerationExhaustedError wrapping the last failure; cancellation
// of ctx is returned as is.
func (c *Client) GenerateWithRetry(ctx context.Context, date string, maxAttempts int) (domain.GeneratedInsight, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	ctx, span := c.tracer.Start(ctx, "generation.generate", trace.WithAttributes(
		attribute.String("insight.date", date),
		attribute.Int("generation.max_attempts", maxAttempts),
	))
	defer span.End()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := c.Generate(ctx, date)
		if err == nil {
			span.SetAttributes(attribute.Int("generation.attempts", attempt))
			return out, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			span.SetStatus(codes.Error, "cancelled")
			return domain.GeneratedInsight{}, ctxErr
		}
		lastErr = err

		c.log.WarnContext(ctx, "generation attempt failed",
			slog.String("date", date),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
			slog.Bool("parse_error", errors.Is(err, domain.ErrParse)),
			slog.String("error", err.Error()),
		)

		if attempt < maxAttempts {
			if err := c.sleep(ctx, time.Duration(attempt)*c.backoffStep); err != nil {
				span.SetStatus(codes.Error, "cancelled")
				return domain.GeneratedInsight{}, err
			}
		}
	}

	exhausted := &domain.GenerationExhaustedError{Attempts: maxAttempts, Last: lastErr}
	span.RecordError(exhausted)
	span.SetStatus(codes.Error, "exhausted")
	return domain.GeneratedInsight{}, exhausted
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
