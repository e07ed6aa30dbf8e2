package domain

import (
	"strings"
	"time"
)

// Keyword is one highlighted term of an insight with a short explanation.
type Keyword struct {
	Keyword     string `json:"keyword"     yaml:"keyword"`
	Description string `json:"description" yaml:"description"`
}

// Insight is the curated entry for a single calendar date.
type Insight struct {
	ID          int64
	Date        string
	InsightText string
	Keywords    []Keyword
	Context     string
	Question    string
	CreatedAt   time.Time
}

// GeneratedInsight is the content of an insight before it is bound to a date and stored.
type GeneratedInsight struct {
	InsightText string    `json:"insight_text" yaml:"insight_text"`
	Keywords    []Keyword `json:"keywords"     yaml:"keywords"`
	Context     string    `json:"context"      yaml:"context"`
	Question    string    `json:"question"     yaml:"question"`
}

// InsightInput is what the store receives on upsert.
type InsightInput struct {
	Date string
	GeneratedInsight
}

// CalendarItem is the month-view projection of an insight.
type CalendarItem struct {
	Date        string
	InsightText string
	HasInsight  bool
}

// Content returns the generated part of a stored insight.
func (i Insight) Content() GeneratedInsight {
	return GeneratedInsight{
		InsightText: i.InsightText,
		Keywords:    i.Keywords,
		Context:     i.Context,
		Question:    i.Question,
	}
}

// Validate checks that every required field is present and every keyword
// carries both of its sub-fields.
func (g GeneratedInsight) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(g.InsightText) == "" {
		errs = append(errs, FieldError{Field: "insight_text", Message: "required"})
	}
	if strings.TrimSpace(g.Context) == "" {
		errs = append(errs, FieldError{Field: "context", Message: "required"})
	}
	if strings.TrimSpace(g.Question) == "" {
		errs = append(errs, FieldError{Field: "question", Message: "required"})
	}
	if len(g.Keywords) == 0 {
		errs = append(errs, FieldError{Field: "keywords", Message: "must not be empty"})
	}
	for _, kw := range g.Keywords {
		if strings.TrimSpace(kw.Keyword) == "" || strings.TrimSpace(kw.Description) == "" {
			errs = append(errs, FieldError{Field: "keywords", Message: "each keyword needs keyword and description"})
			break
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Preview returns at most n runes of the insight text.
func (g GeneratedInsight) Preview(n int) string {
	r := []rune(g.InsightText)
	if len(r) <= n {
		return g.InsightText
	}
	return string(r[:n])
}
