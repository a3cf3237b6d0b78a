package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `[app]
title = "Mental Health Support Chat"
warning_message = "I'm an AI assistant, not a licensed therapist."
crisis_hotline = "988"
crisis_text = "Text HOME to 741741"

[model]
default_model = "gpt-4o-mini"
max_tokens = 500
temperature = 0.7

[style]
background_color = "#f0f2f6"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Title != "Mental Health Support Chat" {
		t.Errorf("Expected title 'Mental Health Support Chat', got '%s'", cfg.App.Title)
	}
	if cfg.App.CrisisHotline != "988" {
		t.Errorf("Expected crisis_hotline '988', got '%s'", cfg.App.CrisisHotline)
	}
	if cfg.Model.MaxTokens != 500 {
		t.Errorf("Expected max_tokens 500, got %d", cfg.Model.MaxTokens)
	}
	if cfg.Model.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %f", cfg.Model.Temperature)
	}
	if cfg.Style.BackgroundColor != "#f0f2f6" {
		t.Errorf("Expected background_color '#f0f2f6', got '%s'", cfg.Style.BackgroundColor)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_MissingKeys(t *testing.T) {
	partial := `[app]
title = "Mental Health Support Chat"

[model]
default_model = "gpt-4o-mini"
`
	_, err := Load(writeConfig(t, partial))
	if err == nil {
		t.Fatal("Expected error for missing keys")
	}

	// Every missing key should be reported, not just the first.
	for _, key := range []string{
		"app.warning_message",
		"app.crisis_hotline",
		"app.crisis_text",
		"model.max_tokens",
		"model.temperature",
		"style.background_color",
	} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected error to mention '%s', got: %v", key, err)
		}
	}
	if strings.Contains(err.Error(), "app.title") {
		t.Errorf("Error should not mention present key 'app.title': %v", err)
	}
}

func TestValidate_TemperatureRange(t *testing.T) {
	tests := []struct {
		name    string
		temp    float32
		wantErr bool
	}{
		{"zero", 0, false},
		{"normal", 0.7, false},
		{"max", 2.0, false},
		{"negative", -0.1, true},
		{"too_high", 2.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Model: ModelConfig{DefaultModel: "gpt-4o-mini", MaxTokens: 500, Temperature: tt.temp}}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("temperature=%.1f: err=%v, wantErr=%v", tt.temp, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MaxTokens(t *testing.T) {
	cfg := &Config{Model: ModelConfig{DefaultModel: "gpt-4o-mini", MaxTokens: 0, Temperature: 0.7}}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for non-positive max_tokens")
	}
}
