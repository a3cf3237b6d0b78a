package openai

import (
	"strings"
	"testing"
)

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_ORG_ID", "")

	config, err := NewConfig("gpt-4o-mini", 500, 0.7)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if config.APIKey != "test-key" {
		t.Errorf("Expected API key from environment, got '%s'", config.APIKey)
	}
	if config.Model != "gpt-4o-mini" {
		t.Errorf("Expected model 'gpt-4o-mini', got '%s'", config.Model)
	}
	if config.MaxTokens != 500 {
		t.Errorf("Expected max tokens 500, got %d", config.MaxTokens)
	}
	if config.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("Expected default base URL, got '%s'", config.BaseURL)
	}
}

func TestNewConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewConfig("gpt-4o-mini", 500, 0.7)
	if err == nil {
		t.Fatal("Expected error when OPENAI_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("Expected error to name the missing variable, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  Config{APIKey: "test-key", Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 500},
			wantErr: false,
		},
		{
			name:    "missing_api_key",
			config:  Config{Model: "gpt-4o-mini", Temperature: 0.7},
			wantErr: true,
		},
		{
			name:    "missing_model",
			config:  Config{APIKey: "test-key", Temperature: 0.7},
			wantErr: true,
		},
		{
			name:    "temperature_too_high",
			config:  Config{APIKey: "test-key", Model: "gpt-4o-mini", Temperature: 2.5},
			wantErr: true,
		},
		{
			name:    "temperature_negative",
			config:  Config{APIKey: "test-key", Model: "gpt-4o-mini", Temperature: -0.1},
			wantErr: true,
		},
		{
			name:    "negative_max_tokens",
			config:  Config{APIKey: "test-key", Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
