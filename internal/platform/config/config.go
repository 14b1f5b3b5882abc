// Package config loads application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Completion provider identifiers accepted in COMPLETION_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variable names to fields.
type Config struct {
	// Server
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g. ":8080"

	// Database. DATABASE_* takes precedence; when Host is empty the server
	// falls back to a local SQLite file (development mode).
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	SQLitePath string `mapstructure:"SQLITE_PATH"` // e.g. "./pagegen.db"

	// Sessions
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	TokenExpiry time.Duration `mapstructure:"TOKEN_EXPIRY"` // e.g. "24h"

	// Completion proxy
	CompletionProvider string        `mapstructure:"COMPLETION_PROVIDER"` // "openai" or "gemini"
	CompletionModel    string        `mapstructure:"COMPLETION_MODEL"`
	CompletionTimeout  time.Duration `mapstructure:"COMPLETION_TIMEOUT"`
	OpenAIAPIKey       string        `mapstructure:"OPENAI_API_KEY"`
}

// Load reads configuration from environment variables and applies defaults.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("SQLITE_PATH", "./pagegen.db")
	v.SetDefault("TOKEN_EXPIRY", "24h")
	v.SetDefault("COMPLETION_PROVIDER", ProviderOpenAI)
	// COMPLETION_MODEL is left empty by default; each provider adapter
	// falls back to its own default model.
	v.SetDefault("COMPLETION_TIMEOUT", "30s")

	// AutomaticEnv alone does not surface env vars through Unmarshal,
	// so bind every key explicitly.
	for _, key := range []string{
		"SERVER_ADDRESS",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "SQLITE_PATH",
		"JWT_SECRET", "TOKEN_EXPIRY",
		"COMPLETION_PROVIDER", "COMPLETION_MODEL", "COMPLETION_TIMEOUT", "OPENAI_API_KEY",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present. A failure here is a
// fatal misconfiguration: the process must not serve traffic without them.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.CompletionProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when COMPLETION_PROVIDER=openai")
		}
	case ProviderGemini:
		// The genai client reads its credentials (GEMINI_API_KEY or Vertex
		// ADC) from the environment itself; nothing to check here.
	default:
		return fmt.Errorf("unknown COMPLETION_PROVIDER %q", c.CompletionProvider)
	}
	if c.CompletionTimeout <= 0 {
		return errors.New("COMPLETION_TIMEOUT must be positive")
	}
	if c.TokenExpiry <= 0 {
		return errors.New("TOKEN_EXPIRY must be positive")
	}
	return nil
}
