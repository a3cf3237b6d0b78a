package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/havenai/haven-go/llm"
)

// Client implements llm.Provider for OpenAI chat models. Each Complete call
// makes exactly one request; there is no retry or backoff, failure handling
// belongs to the caller.
type Client struct {
	client *openai.Client
	config *Config
}

// NewClient creates a new OpenAI client with the provided configuration.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.OrgID != "" {
		clientConfig.OrgID = config.OrgID
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Complete implements the generic interface, converting messages
// internally.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (llm.Message, error) {
	if len(messages) == 0 {
		return llm.Message{}, fmt.Errorf("no messages to send")
	}

	request := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    convertMessages(messages),
		Temperature: c.config.Temperature,
	}
	if c.config.MaxTokens > 0 {
		request.MaxTokens = c.config.MaxTokens
	}

	response, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return llm.Message{}, fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return llm.Message{}, fmt.Errorf("no choices returned from OpenAI API")
	}

	return llm.Message{
		Role:    llm.RoleAssistant,
		Content: response.Choices[0].Message.Content,
	}, nil
}

// convertMessages converts generic messages to OpenAI format.
func convertMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return converted
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "openai"
}
