package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Supported AI providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds all configuration for the vision-chat-api service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"vision-chat-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"VISION_CHAT_API_PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProjectName     string        `env:"PROJECT_NAME" envDefault:"AI Vision & Chat Hub"`
	Version         string        `env:"VERSION" envDefault:"1.0.0"`
	APIPrefix       string        `env:"API_PREFIX" envDefault:"/api/v1"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// AI provider
	AIProvider       string        `env:"AI_PROVIDER" envDefault:"gemini"`
	AIRequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" envDefault:"60s"`

	GoogleAPIKey      string `env:"GOOGLE_API_KEY"`
	GeminiBaseURL     string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiTextModel   string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiVisionModel string `env:"GEMINI_VISION_MODEL" envDefault:"gemini-1.5-flash"`

	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAITextModel   string `env:"OPENAI_TEXT_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIVisionModel string `env:"OPENAI_VISION_MODEL" envDefault:"gpt-4o-mini"`

	// Uploads
	MaxFileSize       int64    `env:"MAX_FILE_SIZE" envDefault:"10485760"`
	AllowedImageTypes []string `env:"ALLOWED_IMAGE_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,image/webp"`

	// Conversation store
	StoreReportInterval time.Duration `env:"STORE_REPORT_INTERVAL" envDefault:"30s"`

	// CORS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`

	// Rate limiting (configured, not enforced)
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE" envDefault:"15"`
	RequestsPerDay    int `env:"REQUESTS_PER_DAY" envDefault:"1500"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express.
func (c *Config) Validate() error {
	c.AIProvider = strings.ToLower(strings.TrimSpace(c.AIProvider))

	switch c.AIProvider {
	case ProviderGemini:
		if strings.TrimSpace(c.GoogleAPIKey) == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when AI_PROVIDER is %s", ProviderGemini)
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is %s", ProviderOpenAI)
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AIProvider)
	}

	if c.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	if c.StoreReportInterval <= 0 {
		return fmt.Errorf("STORE_REPORT_INTERVAL must be positive")
	}

	return nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
