package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port" env:"PORT" envDefault:"8080"`
	Environment string `json:"environment" env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `json:"log_level" env:"LOG_LEVEL" envDefault:"info"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled" env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string `json:"tracing_endpoint" env:"TRACING_ENDPOINT" envDefault:"localhost:4317"`

	TracingMaxExportBatchSize int           `json:"tracing_max_export_batch_size" env:"TRACING_MAX_EXPORT_BATCH_SIZE" envDefault:"512"`
	TracingMaxQueueSize       int           `json:"tracing_max_queue_size" env:"TRACING_MAX_QUEUE_SIZE" envDefault:"2048"`
	TracingBatchTimeout       time.Duration `json:"tracing_batch_timeout" env:"TRACING_BATCH_TIMEOUT" envDefault:"10s"`

	// Validation configuration
	MaxBatchSize int `json:"max_batch_size" env:"MAX_BATCH_SIZE" envDefault:"100"`

	// CORS configuration
	CORSAllowedOrigins []string `json:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

var (
	AppConfig *Config

	ErrInvalidPort      = errors.New("PORT must be between 1 and 65535")
	ErrInvalidBatchSize = errors.New("MAX_BATCH_SIZE must be at least 1")
	ErrInvalidTracing   = errors.New("tracing batch limits must be positive and the queue at least one batch")
)

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present; real environment
// variables take precedence over it.
func LoadConfig() error {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	AppConfig = &cfg
	return nil
}

// Validate checks value ranges that struct tags cannot express
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: %w", c.Port, ErrInvalidPort)
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("invalid MAX_BATCH_SIZE %d: %w", c.MaxBatchSize, ErrInvalidBatchSize)
	}
	if c.TracingEnabled {
		if c.TracingMaxExportBatchSize < 1 || c.TracingBatchTimeout <= 0 ||
			c.TracingMaxQueueSize < c.TracingMaxExportBatchSize {
			return fmt.Errorf("batch %d, queue %d, timeout %s: %w",
				c.TracingMaxExportBatchSize, c.TracingMaxQueueSize, c.TracingBatchTimeout, ErrInvalidTracing)
		}
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsAllOrigins reports whether CORS is open to any origin
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
