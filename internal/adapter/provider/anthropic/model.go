// Package anthropic adapts the Claude Messages API to the text-completion
// contract used by insight generation.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Config holds the request parameters.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	TopP        float32
	MaxTokens   int32
	BaseURL     string
	HTTPClient  *http.Client
}

// Model sends prompts to Claude.
type Model struct {
	client sdk.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a Claude model. SDK-level retries are disabled; the caller
// owns the retry policy.
func New(logger *slog.Logger, cfg Config) (*Model, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("anthropic: API key is not set")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Model{
		client: sdk.NewClient(opts...),
		cfg:    cfg,
		log:    logger.With("adapter", "anthropic"),
	}, nil
}

// Complete sends prompt as a single user message and returns the joined
// text blocks of the reply.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	m.log.DebugContext(ctx, "anthropic request", slog.String("model", m.cfg.Model), slog.Int("prompt_len", len(prompt)))

	msg, err := m.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(m.cfg.Model),
		MaxTokens:   int64(m.cfg.MaxTokens),
		Temperature: sdk.Float(float64(m.cfg.Temperature)),
		TopP:        sdk.Float(float64(m.cfg.TopP)),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: API call: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic: API response has no text")
	}

	m.log.DebugContext(ctx, "anthropic response", slog.Int("text_len", sb.Len()), slog.String("stop_reason", string(msg.StopReason)))
	return sb.String(), nil
}
