// Package gemini adapts the Google Gemini API to the text-completion
// contract used by insight generation.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Config holds the sampling parameters sent with every request.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
	// BaseURL overrides the API endpoint. Empty means the public endpoint.
	BaseURL    string
	HTTPClient *http.Client
}

// Model sends prompts to Gemini.
type Model struct {
	client *genai.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a Gemini model. An empty API key is rejected.
func New(ctx context.Context, logger *slog.Logger, cfg Config) (*Model, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: API key is not set")
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Model{
		client: client,
		cfg:    cfg,
		log:    logger.With("adapter", "gemini"),
	}, nil
}

// Complete sends prompt as a single user turn and returns the concatenated
// text parts of the first candidate.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	// Some models ignore the MIME hint, so replies still go through fence
	// extraction.
	gc := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(m.cfg.Temperature),
		TopP:             genai.Ptr(m.cfg.TopP),
		MaxOutputTokens:  m.cfg.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	m.log.DebugContext(ctx, "gemini request", slog.String("model", m.cfg.Model), slog.Int("prompt_len", len(prompt)))

	resp, err := m.client.Models.GenerateContent(ctx, m.cfg.Model, genai.Text(prompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini: API call: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: API response has no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini: API response has no text")
	}

	m.log.DebugContext(ctx, "gemini response", slog.Int("text_len", sb.Len()))
	return sb.String(), nil
}
