package llm

import "context"

const (
	// RoleSystem is the non-displayed instruction turn that anchors a
	// conversation.
	RoleSystem = "system"
	// RoleUser is a user-authored turn.
	RoleUser = "user"
	// RoleAssistant is an assistant-authored turn.
	RoleAssistant = "assistant"
)

// Message is a single role-tagged conversation turn. Messages are immutable
// once created; ordering within a conversation is chronological.
type Message struct {
	Role    string // One of the Role constants
	Content string // The message text
}

// Provider is the contract every completion backend must satisfy.
type Provider interface {
	// Complete sends the ordered message window to the backend and returns a
	// single assistant message. Implementations make exactly one attempt;
	// failure handling is the caller's concern.
	Complete(ctx context.Context, messages []Message) (Message, error)

	// Name returns the provider identifier (e.g. "openai", "gemini").
	Name() string
}
