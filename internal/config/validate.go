package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.App.Env) {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("app.env must be %q or %q (got %q)", EnvDevelopment, EnvProduction, c.App.Env)
	}

	if !c.Database.MockMode() {
		switch strings.ToLower(c.Database.Driver) {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Database.Driver)
		}
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if c.Tracing.Enabled {
		switch c.Tracing.Exporter {
		case "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be stdout or otlp (got %q)", c.Tracing.Exporter)
		}
	}

	return nil
}

func (l *LLMConfig) validate() error {
	switch strings.ToLower(l.Provider) {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderGemini, ProviderAnthropic, l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	if l.TopP <= 0 || l.TopP > 1 {
		return fmt.Errorf("top_p must be within (0, 1] (got %v)", l.TopP)
	}
	if l.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be > 0 (got %d)", l.MaxOutputTokens)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", g.MaxAttempts)
	}
	if g.PreviewMaxAttempts < 1 {
		return fmt.Errorf("preview_max_attempts must be >= 1 (got %d)", g.PreviewMaxAttempts)
	}
	if g.BackoffStep < 0 {
		return fmt.Errorf("backoff_step must be >= 0 (got %s)", g.BackoffStep)
	}
	if g.SeedConcurrency < 1 {
		return fmt.Errorf("seed_concurrency must be >= 1 (got %d)", g.SeedConcurrency)
	}
	return nil
}
