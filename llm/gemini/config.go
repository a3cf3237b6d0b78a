package gemini

import (
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Config holds Gemini-specific configuration settings. The credential is
// read exclusively from the environment; it must never appear in config
// files, source, or logs.
type Config struct {
	APIKey      string        // From GOOGLE_API_KEY, never from config files
	Model       string        // e.g. "gemini-2.0-flash"
	Temperature float32
	MaxTokens   int           // 0 = no limit
	Backend     genai.Backend // Default: genai.BackendGeminiAPI
}

// NewConfig builds a provider config from model parameters, reading the
// credential from GOOGLE_API_KEY.
func NewConfig(model string, maxTokens int, temperature float32) (*Config, error) {
	config := &Config{
		APIKey:      os.Getenv("GOOGLE_API_KEY"),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Backend:     genai.BackendGeminiAPI,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable is required. Please set it with your Google API key")
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
