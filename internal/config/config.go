package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
)

// Config holds the environment driven configuration for the support chat service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"support-chat"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DBPostgresqlWriteDSN string `env:"DB_POSTGRESQL_WRITE_DSN,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Reply generation
	UseMockAI      bool          `env:"USE_MOCK_AI" envDefault:"false"`
	LLMProvider    string        `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMModel       string        `env:"LLM_MODEL"`
	MaxTokens      int           `env:"MAX_TOKENS" envDefault:"500"`
	RequestTimeout time.Duration `env:"LLM_REQUEST_TIMEOUT" envDefault:"30s"`

	// Provider credentials and endpoints
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string `env:"OPENAI_BASE_URL"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	GeminiBaseURL      string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	HuggingFaceAPIKey  string `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceBaseURL string `env:"HUGGINGFACE_BASE_URL" envDefault:"https://router.huggingface.co"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.HuggingFaceAPIKey = strings.TrimSpace(cfg.HuggingFaceAPIKey)

	if !cfg.UseMockAI {
		switch cfg.LLMProvider {
		case ProviderOpenAI, ProviderGemini, ProviderHuggingFace:
		default:
			return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
		}
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}

	return cfg, nil
}

// Model returns the configured model name, falling back to a per-provider default.
func (c *Config) Model() string {
	if c.LLMModel != "" {
		return c.LLMModel
	}
	switch c.LLMProvider {
	case ProviderGemini:
		return "gemini-pro"
	case ProviderHuggingFace:
		return "microsoft/DialoGPT-medium"
	default:
		return "gpt-3.5-turbo"
	}
}

// GetDatabaseWriteDSN returns the write database connection string.
func (c *Config) GetDatabaseWriteDSN() string {
	return c.DBPostgresqlWriteDSN
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
