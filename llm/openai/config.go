package openai

import (
	"fmt"
	"os"
)

// Config holds OpenAI-specific configuration settings. The credential is
// read exclusively from the environment; it must never appear in config
// files, source, or logs.
type Config struct {
	APIKey      string  // From OPENAI_API_KEY, never from config files
	Model       string  // e.g. "gpt-4o-mini"
	Temperature float32
	MaxTokens   int     // 0 = no limit
	BaseURL     string  // Default: "https://api.openai.com/v1"
	OrgID       string  // Optional organization ID
}

// NewConfig builds a provider config from model parameters, reading the
// credential from OPENAI_API_KEY.
func NewConfig(model string, maxTokens int, temperature float32) (*Config, error) {
	config := &Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OrgID:       os.Getenv("OPENAI_ORG_ID"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required. Please set it with your OpenAI API key")
	}

	if c.Model == "" {
		return fmt.Errorf("model name cannot be empty")
	}

	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", c.Temperature)
	}

	if c.MaxTokens < 0 {
		return fmt.Errorf("maxTokens cannot be negative, got %d", c.MaxTokens)
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default if
// not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
