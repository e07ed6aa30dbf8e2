package sample

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/insight-calendar/internal/domain"
	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

var errNoDate = errors.New("sample: no insight date in context")

// Model answers every prompt with the catalog entry picked for the insight
// date carried by ctx, wrapped in a json code fence the way hosted models
// tend to reply.
type Model struct {
	log *slog.Logger
}

// NewModel creates an offline model.
func NewModel(logger *slog.Logger) *Model {
	return &Model{log: logger.With("adapter", "sample")}
}

// Complete returns a fenced JSON rendition of the sample for the date set
// with ctxutil.WithInsightDate.
func (m *Model) Complete(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	date, ok := ctxutil.InsightDateFromCtx(ctx)
	if !ok {
		return "", errNoDate
	}
	if err := domain.ValidateDate(date); err != nil {
		return "", fmt.Errorf("sample: %w", err)
	}

	body, err := json.MarshalIndent(Pick(date), "", "  ")
	if err != nil {
		return "", fmt.Errorf("sample: encode: %w", err)
	}

	m.log.DebugContext(ctx, "sample completion", slog.String("date", date), slog.Int("index", IndexFor(date)))
	return "```json\n" + string(body) + "\n```", nil
}
