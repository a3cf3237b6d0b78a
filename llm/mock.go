package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MockProvider implements Provider for testing purposes. It records every
// call so tests can assert on call counts and on the exact message window
// the provider received.
type MockProvider struct {
	name          string
	responses     []string
	responseIndex int
	simulateError bool
	errorMessage  string
	patterns      map[string]string // Pattern-based responses
	callCount     int
	lastMessages  []Message
}

// NewMockProvider creates a new mock provider with configurable responses.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		name:      name,
		responses: []string{"Mock response from " + name},
		patterns:  make(map[string]string),
	}
}

// Complete simulates a completion call and returns configured responses or
// errors.
func (m *MockProvider) Complete(ctx context.Context, messages []Message) (Message, error) {
	m.callCount++
	m.lastMessages = append([]Message(nil), messages...)

	if m.simulateError {
		if m.errorMessage != "" {
			return Message{}, errors.New(m.errorMessage)
		}
		return Message{}, fmt.Errorf("simulated API error from %s", m.name)
	}

	// Pattern-based responses take precedence over the canned list.
	if len(m.patterns) > 0 && len(messages) > 0 {
		last := messages[len(messages)-1]
		if last.Role == RoleUser {
			input := strings.ToLower(last.Content)
			for pattern, response := range m.patterns {
				if strings.Contains(input, strings.ToLower(pattern)) {
					return Message{Role: RoleAssistant, Content: response}, nil
				}
			}
		}
	}

	if len(m.responses) == 0 {
		return Message{Role: RoleAssistant, Content: "Default mock response"}, nil
	}

	response := m.responses[m.responseIndex]
	// Cycle through responses for multiple calls.
	m.responseIndex = (m.responseIndex + 1) % len(m.responses)

	return Message{Role: RoleAssistant, Content: response}, nil
}

// Name returns the mock provider name.
func (m *MockProvider) Name() string {
	return m.name
}

// SetResponses configures the responses that the mock will return.
func (m *MockProvider) SetResponses(responses []string) {
	m.responses = responses
	m.responseIndex = 0
}

// AddResponse adds a single response to the response list.
func (m *MockProvider) AddResponse(response string) {
	m.responses = append(m.responses, response)
}

// SetError configures the mock to simulate an error on every call.
func (m *MockProvider) SetError(shouldError bool, errorMessage string) {
	m.simulateError = shouldError
	m.errorMessage = errorMessage
}

// SetResponsePattern configures responses keyed by input substrings, for
// example {"hello": "Hi there!", "bye": "Goodbye!"}.
func (m *MockProvider) SetResponsePattern(patterns map[string]string) {
	m.patterns = patterns
}

// CallCount returns the number of times Complete has been called.
func (m *MockProvider) CallCount() int {
	return m.callCount
}

// LastMessages returns a copy of the message window from the most recent
// Complete call, or nil if the mock was never called.
func (m *MockProvider) LastMessages() []Message {
	return m.lastMessages
}

// Reset returns the mock provider to its initial state.
func (m *MockProvider) Reset() {
	m.responses = []string{"Mock response from " + m.name}
	m.responseIndex = 0
	m.simulateError = false
	m.errorMessage = ""
	m.patterns = make(map[string]string)
	m.callCount = 0
	m.lastMessages = nil
}
