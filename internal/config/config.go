package config

import (
	"strings"
	"time"
)

// Environments recognised by AppConfig.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store drivers recognised by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LLM providers recognised by LLMConfig.Provider.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config is the root application configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Cron       CronConfig       `yaml:"cron"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// AppConfig holds deployment-wide switches.
type AppConfig struct {
	Env       string `yaml:"env"        env:"APP_ENV"    env-default:"development"`
	AllowSeed bool   `yaml:"allow_seed" env:"ALLOW_SEED" env-default:"false"`
}

// IsDevelopment reports whether the relaxed development behaviour applies.
// Anything other than "production" counts as development.
func (c AppConfig) IsDevelopment() bool {
	return !strings.EqualFold(c.Env, EnvProduction)
}

// SeedAllowed reports whether sample seeding may run.
func (c AppConfig) SeedAllowed() bool {
	return c.IsDevelopment() || c.AllowSeed
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-User-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds store connection settings.
// An empty DSN selects the in-memory mock store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN,DATABASE_URL,POSTGRES_URL"`
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// MockMode reports whether no store is configured.
func (c DatabaseConfig) MockMode() bool {
	return strings.TrimSpace(c.DSN) == ""
}

// Mode names the active store for logs and health output.
func (c DatabaseConfig) Mode() string {
	if c.MockMode() {
		return "mock"
	}
	return strings.ToLower(c.Driver)
}

// LLMConfig holds generative model settings.
// An empty APIKey selects deterministic sample generation.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"gemini"`
	APIKey          string        `yaml:"api_key"           env:"LLM_API_KEY,GEMINI_API_KEY"`
	Model           string        `yaml:"model"             env:"LLM_MODEL"             env-default:"gemini-2.0-flash"`
	Temperature     float32       `yaml:"temperature"       env:"LLM_TEMPERATURE"       env-default:"0.7"`
	TopP            float32       `yaml:"top_p"             env:"LLM_TOP_P"             env-default:"0.9"`
	MaxOutputTokens int32         `yaml:"max_output_tokens" env:"LLM_MAX_OUTPUT_TOKENS" env-default:"1024"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"LLM_REQUEST_TIMEOUT"   env-default:"30s"`
	BaseURL         string        `yaml:"base_url"          env:"LLM_BASE_URL"`
}

// SampleMode reports whether no model credential is configured.
func (c LLMConfig) SampleMode() bool {
	return strings.TrimSpace(c.APIKey) == ""
}

// GenerationConfig holds retry settings for insight generation.
type GenerationConfig struct {
	MaxAttempts        int           `yaml:"max_attempts"         env:"GENERATION_MAX_ATTEMPTS"         env-default:"3"`
	PreviewMaxAttempts int           `yaml:"preview_max_attempts" env:"GENERATION_PREVIEW_MAX_ATTEMPTS" env-default:"2"`
	BackoffStep        time.Duration `yaml:"backoff_step"         env:"GENERATION_BACKOFF_STEP"         env-default:"1s"`
	Timeout            time.Duration `yaml:"timeout"              env:"GENERATION_TIMEOUT"              env-default:"80s"`
	SeedConcurrency    int           `yaml:"seed_concurrency"     env:"GENERATION_SEED_CONCURRENCY"     env-default:"4"`
}

// CronConfig holds the scheduler shared secret.
type CronConfig struct {
	Secret string `yaml:"secret" env:"CRON_SECRET"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds the write endpoints per client IP.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"6"`
	SeedPerMinute     int           `yaml:"seed_per_minute"     env:"RATE_LIMIT_SEED_PER_MINUTE"     env-default:"6"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// TracingConfig holds OpenTelemetry exporter settings.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"      env:"TRACING_ENABLED"      env-default:"false"`
	Exporter    string  `yaml:"exporter"     env:"TRACING_EXPORTER"     env-default:"stdout"`
	Endpoint    string  `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"    env-default:"insight-calendar"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1.0"`
}
