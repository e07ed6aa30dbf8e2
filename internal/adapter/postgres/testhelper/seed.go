package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/insight-calendar/internal/domain"
)

// UniqueMonth returns a far-future year and month that no other test is
// likely to touch, so tests sharing the container do not need truncation.
func UniqueMonth() (int, int) {
	return 2200 + rand.IntN(7000), 1 + rand.IntN(12)
}

// UniqueDate returns a date inside a UniqueMonth.
func UniqueDate() string {
	year, month := UniqueMonth()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, 1+rand.IntN(28))
}

// SampleContent returns valid generated content with a recognisable text.
func SampleContent(text string) domain.GeneratedInsight {
	return domain.GeneratedInsight{
		InsightText: text,
		Keywords: []domain.Keyword{
			{Keyword: "kw-" + text, Description: "desc-" + text},
		},
		Context:  "context " + text,
		Question: "question " + text + "?",
	}
}

// SeedInsight inserts an insight row directly and returns it as stored.
func SeedInsight(t *testing.T, pool *pgxpool.Pool, date string, content domain.GeneratedInsight) domain.Insight {
	t.Helper()
	ctx := context.Background()

	keywords, err := json.Marshal(content.Keywords)
	if err != nil {
		t.Fatalf("testhelper: SeedInsight marshal keywords: %v", err)
	}

	var (
		id        int64
		createdAt time.Time
	)
	err = pool.QueryRow(ctx,
		`INSERT INTO insights (date, insight_text, keywords, context, question)
		 VALUES ($1, $2, $3::jsonb, $4, $5)
		 RETURNING id, created_at`,
		date, content.InsightText, string(keywords), content.Context, content.Question,
	).Scan(&id, &createdAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInsight insert: %v", err)
	}

	return domain.Insight{
		ID:          id,
		Date:        date,
		InsightText: content.InsightText,
		Keywords:    content.Keywords,
		Context:     content.Context,
		Question:    content.Question,
		CreatedAt:   createdAt,
	}
}
