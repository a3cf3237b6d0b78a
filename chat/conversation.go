// Package chat holds the per-session conversation state and the response
// generator that turns it into assistant replies.
package chat

import (
	"github.com/havenai/haven-go/config"
	"github.com/havenai/haven-go/llm"
	"github.com/havenai/haven-go/prompt"
)

// HistoryWindow is the maximum number of messages sent to the completion
// provider per turn, counting the system message.
const HistoryWindow = 6

// Conversation is the ordered message history for a single session. The
// first message is always the system prompt; it is never displayed and
// never dropped, even when history is pruned for a provider call or cleared
// by the user. Each session owns its own Conversation; nothing is shared
// across sessions, so no locking is needed.
type Conversation struct {
	messages []llm.Message
}

// New creates a session conversation: the system prompt followed by the
// assistant greeting.
func New(cfg *config.Config) *Conversation {
	return &Conversation{
		messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompt.System(cfg)},
			{Role: llm.RoleAssistant, Content: prompt.Greeting(cfg)},
		},
	}
}

// Append adds a message to the end of the history.
func (c *Conversation) Append(role, content string) {
	c.messages = append(c.messages, llm.Message{Role: role, Content: content})
}

// Clear resets the conversation, retaining only the original system message
// and appending a fresh greeting.
func (c *Conversation) Clear() {
	c.messages = []llm.Message{
		c.messages[0],
		{Role: llm.RoleAssistant, Content: prompt.ClearGreeting()},
	}
}

// Messages returns the full history, system message included.
func (c *Conversation) Messages() []llm.Message {
	return c.messages
}

// Displayed returns the history without the system message, in order.
func (c *Conversation) Displayed() []llm.Message {
	return c.messages[1:]
}

// Last returns the most recent message.
func (c *Conversation) Last() llm.Message {
	return c.messages[len(c.messages)-1]
}

// Window returns the bounded history sent to the provider: the system
// message plus the most recent turns, at most n messages total. The suffix
// never opens on an assistant message whose user turn was pruned, so
// role/content pairing stays intact.
func (c *Conversation) Window(n int) []llm.Message {
	if n <= 0 || len(c.messages) <= n {
		return c.messages
	}

	start := len(c.messages) - (n - 1)
	if start < 1 {
		start = 1
	}
	for start < len(c.messages)-1 && c.messages[start].Role == llm.RoleAssistant && c.messages[start-1].Role == llm.RoleUser {
		start++
	}

	window := make([]llm.Message, 0, 1+len(c.messages)-start)
	window = append(window, c.messages[0])
	window = append(window, c.messages[start:]...)
	return window
}
