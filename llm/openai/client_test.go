package openai

import (
	"testing"

	"github.com/havenai/haven-go/llm"
)

func TestNewClient_InvalidConfig(t *testing.T) {
	// Nil config
	if _, err := NewClient(nil); err == nil {
		t.Error("Expected error for nil config")
	}

	// Missing API key
	invalidConfig := &Config{
		APIKey:      "",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	}
	if _, err := NewClient(invalidConfig); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestClient_Name(t *testing.T) {
	config := &Config{
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		BaseURL:     "https://api.openai.com/v1",
	}

	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.Name() != "openai" {
		t.Errorf("Expected name 'openai', got '%s'", client.Name())
	}
}

func TestConvertMessages(t *testing.T) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a supportive assistant."},
		{Role: llm.RoleUser, Content: "Hello"},
		{Role: llm.RoleAssistant, Content: "Hi! How are you feeling today?"},
	}

	converted := convertMessages(messages)

	if len(converted) != 3 {
		t.Fatalf("Expected 3 converted messages, got %d", len(converted))
	}
	for i, msg := range messages {
		if converted[i].Role != msg.Role {
			t.Errorf("Message %d: expected role '%s', got '%s'", i, msg.Role, converted[i].Role)
		}
		if converted[i].Content != msg.Content {
			t.Errorf("Message %d: expected content '%s', got '%s'", i, msg.Content, converted[i].Content)
		}
	}
}
