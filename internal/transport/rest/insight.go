package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/insight-calendar/internal/domain"
	"github.com/heartmarshall/insight-calendar/internal/service/insight"
)

// previewRunes is the length of insight_preview in the generate response.
const previewRunes = 100

// insightService defines the minimal interface needed by InsightHandler.
type insightService interface {
	GetByDate(ctx context.Context, date string) (*domain.Insight, error)
	GetByMonth(ctx context.Context, year, month int) ([]domain.CalendarItem, error)
	Recent(ctx context.Context, limit int) ([]domain.Insight, error)
	RunDaily(ctx context.Context) insight.DailyResult
	Preview(ctx context.Context) (string, domain.GeneratedInsight, error)
	Seed(ctx context.Context, in insight.SeedInput) (insight.SeedReport, error)
}

// EnvCheck reports which credentials are configured. It is attached to
// generation failures that look like a credential problem.
type EnvCheck struct {
	HasLLMKey bool `json:"has_llm_key"`
	HasDBDSN  bool `json:"has_db_dsn"`
}

// InsightHandler serves the insight REST endpoints.
type InsightHandler struct {
	svc             insightService
	log             *slog.Logger
	env             EnvCheck
	generateTimeout time.Duration
}

// NewInsightHandler creates an InsightHandler. A positive generateTimeout
// bounds the generate and preview endpoints.
func NewInsightHandler(svc insightService, logger *slog.Logger, env EnvCheck, generateTimeout time.Duration) *InsightHandler {
	return &InsightHandler{
		svc:             svc,
		log:             logger.With("handler", "insight"),
		env:             env,
		generateTimeout: generateTimeout,
	}
}

type insightPreviewResponse struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	InsightText string           `json:"insight_text"`
	Keywords    []domain.Keyword `json:"keywords"`
}

type insightDetailResponse struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	InsightText string           `json:"insight_text"`
	Keywords    []domain.Keyword `json:"keywords"`
	Context     string           `json:"context"`
	Question    string           `json:"question"`
	CreatedAt   time.Time        `json:"created_at"`
}

type calendarItemResponse struct {
	Date        string `json:"date"`
	InsightText string `json:"insight_text"`
	HasInsight  bool   `json:"has_insight"`
}

type monthResponse struct {
	Year     int                    `json:"year"`
	Month    int                    `json:"month"`
	Count    int                    `json:"count"`
	Insights []calendarItemResponse `json:"insights"`
}

type recentResponse struct {
	Count    int                     `json:"count"`
	Insights []insightDetailResponse `json:"insights"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Date           string `json:"date"`
	Skipped        bool   `json:"skipped,omitempty"`
	InsightPreview string `json:"insight_preview,omitempty"`
	DurationMS     int64  `json:"duration_ms"`
}

type generateFailure struct {
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	Date       string    `json:"date"`
	DurationMS *int64    `json:"duration_ms,omitempty"`
	EnvCheck   *EnvCheck `json:"env_check,omitempty"`
}

type previewResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Date    string                  `json:"date"`
	Insight domain.GeneratedInsight `json:"insight"`
}

type seedResponse struct {
	Success bool                 `json:"success"`
	Summary insight.SeedSummary  `json:"summary"`
	Results []insight.SeedResult `json:"results"`
}

// GetByDate handles GET /api/insights/{date}.
func (h *InsightHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if err := domain.ValidateDate(date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	ins, err := h.svc.GetByDate(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err, "Insight not found")
		return
	}

	writeJSON(w, http.StatusOK, insightPreviewResponse{
		ID:          ins.ID,
		Date:        ins.Date,
		InsightText: ins.InsightText,
		Keywords:    nonNilKeywords(ins.Keywords),
	})
}

// GetByMonth handles GET /api/insights/month/{year}/{month}.
func (h *InsightHandler) GetByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < domain.MinYear || year > domain.MaxYear {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid year. Must be between %d and %d", domain.MinYear, domain.MaxYear))
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month. Must be between 1 and 12")
		return
	}

	items, err := h.svc.GetByMonth(r.Context(), year, month)
	if err != nil {
		handleError(h.log, w, r, err, "Insight not found")
		return
	}

	resp := monthResponse{
		Year:     year,
		Month:    month,
		Count:    len(items),
		Insights: make([]calendarItemResponse, len(items)),
	}
	for i, it := range items {
		resp.Insights[i] = calendarItemResponse{Date: it.Date, InsightText: it.InsightText, HasInsight: it.HasInsight}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Recent handles GET /api/insights/recent?limit=N.
func (h *InsightHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	list, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err, "Insight not found")
		return
	}

	resp := recentResponse{Count: len(list), Insights: make([]insightDetailResponse, len(list))}
	for i, ins := range list {
		resp.Insights[i] = insightDetailResponse{
			ID:          ins.ID,
			Date:        ins.Date,
			InsightText: ins.InsightText,
			Keywords:    nonNilKeywords(ins.Keywords),
			Context:     ins.Context,
			Question:    ins.Question,
			CreatedAt:   ins.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Generate handles POST /api/insights/generate, the scheduler trigger.
// Authorization is enforced by middleware.CronAuth.
func (h *InsightHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.generationContext(r.Context())
	defer cancel()

	res := h.svc.RunDaily(ctx)
	durationMS := res.Duration.Milliseconds()

	switch res.Status {
	case insight.StatusSkipped:
		writeJSON(w, http.StatusOK, generateResponse{
			Success:    true,
			Message:    "Insight already exists for today",
			Date:       res.Date,
			Skipped:    true,
			DurationMS: durationMS,
		})
	case insight.StatusCreated:
		resp := generateResponse{
			Success:    true,
			Message:    "Insight generated successfully",
			Date:       res.Date,
			DurationMS: durationMS,
		}
		if res.Insight != nil {
			resp.InsightPreview = res.Insight.Preview(previewRunes)
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		msg := "Unknown error"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		failure := generateFailure{
			Error:      "Failed to generate insight",
			Message:    msg,
			Date:       res.Date,
			DurationMS: &durationMS,
		}
		if looksLikeCredentialProblem(msg) {
			env := h.env
			failure.EnvCheck = &env
		}
		writeJSON(w, http.StatusInternalServerError, failure)
	}
}

// Preview handles GET /api/insights/generate. The result is not stored.
func (h *InsightHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.generationContext(r.Context())
	defer cancel()

	date, generated, err := h.svc.Preview(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateFailure{
			Error:   "Failed to generate insight",
			Message: err.Error(),
			Date:    date,
		})
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{
		Success: true,
		Message: "Test generation successful (not saved)",
		Date:    date,
		Insight: generated,
	})
}

// Seed handles GET /api/insights/seed?days=N or ?date=YYYY-MM-DD.
func (h *InsightHandler) Seed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := insight.SeedInput{Days: insight.DefaultSeedDays, Date: strings.TrimSpace(q.Get("date"))}
	if raw := q.Get("days"); raw != "" && in.Date == "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		in.Days = n
	}

	report, err := h.svc.Seed(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "seed failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to seed insights", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Success: true,
		Summary: report.Summary,
		Results: report.Results,
	})
}

func (h *InsightHandler) generationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.generateTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.generateTimeout)
}

func looksLikeCredentialProblem(msg string) bool {
	return strings.Contains(msg, "API") || strings.Contains(msg, "key")
}

func nonNilKeywords(kw []domain.Keyword) []domain.Keyword {
	if kw == nil {
		return []domain.Keyword{}
	}
	return kw
}
