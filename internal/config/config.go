// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration.
type Config struct {
	Gemini   GeminiConfig
	Comments CommentConfig
	LogLevel string
}

// GeminiConfig holds generative backend settings.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// CommentConfig holds comment batching settings.
type CommentConfig struct {
	BatchSize   int
	Concurrency int
}

// Load reads configuration from the environment. Files in envFiles are
// loaded first when they exist; variables already set are not overridden.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Gemini: GeminiConfig{
			APIKey:  firstEnv("GEMINI_API_KEY", "API_KEY"),
			Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL: getEnvOrDefault("GEMINI_API_BASE_URL", ""),
			Timeout: getEnvDurationOrDefault("GEMINI_TIMEOUT", 60*time.Second),
		},
		Comments: CommentConfig{
			BatchSize:   getEnvIntOrDefault("COMMENT_BATCH_SIZE", 30),
			Concurrency: getEnvIntOrDefault("COMMENT_CONCURRENCY", 1),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. A missing API key is not an error here;
// it only matters when comments are requested.
func (c *Config) Validate() error {
	if c.Comments.BatchSize <= 0 {
		return fmt.Errorf("COMMENT_BATCH_SIZE must be positive, got %d", c.Comments.BatchSize)
	}
	if c.Comments.Concurrency <= 0 {
		return fmt.Errorf("COMMENT_CONCURRENCY must be positive, got %d", c.Comments.Concurrency)
	}
	if c.Gemini.Timeout < 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must not be negative")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
