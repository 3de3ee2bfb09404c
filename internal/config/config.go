package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Storage backends. Empty URLs select the in-memory implementations.
	DatabaseURL string
	RedisURL    string
	SessionTTL  time.Duration
	// LLM Configuration
	AnthropicAPIKey string
	Provider        string
	Model           string
	// Timeout applied to each outbound generation call.
	GenerateTimeout time.Duration
}

func Load() *Config {
	anthropicKey := getEnv("ANTHROPIC_API_KEY", "")

	// Without a key the anthropic provider cannot start; default to the
	// offline lorem provider so dev setups work out of the box.
	defaultProvider := "anthropic"
	if anthropicKey == "" {
		defaultProvider = "lorem"
	}
	provider := getEnv("LLM_PROVIDER", defaultProvider)

	defaultModel := "claude-haiku-4-5-20251001"
	if provider == "lorem" {
		defaultModel = "lorem-fast"
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		SessionTTL:      getDuration("SESSION_TTL", 7*24*time.Hour),
		AnthropicAPIKey: anthropicKey,
		Provider:        provider,
		Model:           getEnv("LLM_MODEL", defaultModel),
		GenerateTimeout: getDuration("GENERATE_TIMEOUT", 60*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Bare numbers are read as seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
