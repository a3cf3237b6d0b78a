package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/havenai/haven-go/llm"
)

// Client implements llm.Provider for Google's Gemini models. Each Complete
// call makes exactly one request; there is no retry or backoff.
type Client struct {
	genaiClient *genai.Client
	config      *Config
}

// NewClient creates a new Gemini client with the provided configuration.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: config.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		genaiClient: genaiClient,
		config:      config,
	}, nil
}

// Complete implements the generic interface, converting messages
// internally.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (llm.Message, error) {
	if len(messages) == 0 {
		return llm.Message{}, fmt.Errorf("no messages to send")
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.config.Temperature),
	}
	if c.config.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(c.config.MaxTokens)
	}

	response, err := c.genaiClient.Models.GenerateContent(ctx, c.config.Model, convertMessages(messages), genConfig)
	if err != nil {
		return llm.Message{}, fmt.Errorf("failed to generate content: %w", err)
	}

	return llm.Message{
		Role:    llm.RoleAssistant,
		Content: response.Text(),
	}, nil
}

// convertMessages converts generic messages to Gemini format.
func convertMessages(messages []llm.Message) []*genai.Content {
	converted := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		converted = append(converted, &genai.Content{
			Role: convertRole(msg.Role),
			Parts: []*genai.Part{
				{Text: msg.Content},
			},
		})
	}
	return converted
}

// convertRole maps generic roles onto the two roles Gemini accepts. The
// system message rides along as a user turn.
func convertRole(role string) string {
	switch role {
	case llm.RoleAssistant:
		return genai.RoleModel
	default:
		return genai.RoleUser
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "gemini"
}
