package app

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/gemini"
	"github.com/heartmarshall/insight-calendar/internal/adapter/provider/sample"
	"github.com/heartmarshall/insight-calendar/internal/config"
)

// TextModel is the completion contract consumed by generation.Client.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelSample is the mode reported when no credential is configured.
const ModelSample = "sample"

// defaultAnthropicModel replaces the Gemini model name that LLM_MODEL
// defaults to when the Anthropic provider is selected.
const defaultAnthropicModel = "claude-sonnet-4-5"

// NewTextModel selects the generative backend. Without an API key the
// offline sample model answers every prompt.
func NewTextModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (TextModel, string, error) {
	if cfg.SampleMode() {
		logger.Warn("no LLM API key configured, using sample model")
		return sample.NewModel(logger), ModelSample, nil
	}

	client := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderAnthropic:
		model := cfg.Model
		if strings.HasPrefix(model, "gemini") {
			model = defaultAnthropicModel
		}
		m, err := anthropic.New(logger, anthropic.Config{
			APIKey:      cfg.APIKey,
			Model:       model,
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
			MaxTokens:   cfg.MaxOutputTokens,
			BaseURL:     cfg.BaseURL,
			HTTPClient:  client,
		})
		if err != nil {
			return nil, "", err
		}
		return m, config.ProviderAnthropic, nil
	default:
		m, err := gemini.New(ctx, logger, gemini.Config{
			APIKey:          cfg.APIKey,
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
			BaseURL:         cfg.BaseURL,
			HTTPClient:      client,
		})
		if err != nil {
			return nil, "", err
		}
		return m, config.ProviderGemini, nil
	}
}
