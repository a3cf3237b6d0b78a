// Package prompt assembles the instruction prompt and canned assistant
// messages from the application configuration.
package prompt

import (
	"fmt"
	"strings"

	"github.com/havenai/haven-go/config"
)

// System builds the instruction prompt that anchors every conversation. It
// is never displayed to the user and never dropped from history.
func System(cfg *config.Config) string {
	var builder strings.Builder

	builder.WriteString("You are a helpful, empathetic mental health information assistant.\n\n")

	builder.WriteString("YOUR ROLE:\n")
	builder.WriteString("- Provide general psychoeducation about mental health topics\n")
	builder.WriteString("- Offer supportive, validating responses\n")
	builder.WriteString("- Suggest evidence-based coping strategies\n")
	builder.WriteString("- Help users understand common mental health concepts\n\n")

	builder.WriteString("CRITICAL SAFETY RULES:\n")
	builder.WriteString("- You are NOT a licensed therapist or crisis counselor\n")
	builder.WriteString("- You cannot provide diagnoses or treatment plans\n")
	builder.WriteString("- If a user mentions self-harm, suicide, or immediate danger, you MUST:\n")
	builder.WriteString("  1. Acknowledge their pain\n")
	fmt.Fprintf(&builder, "  2. Provide the crisis hotline: %s\n", cfg.App.CrisisHotline)
	builder.WriteString("  3. Encourage them to contact emergency services if in immediate danger\n")
	builder.WriteString("  4. Keep the response brief and focused on safety\n\n")

	fmt.Fprintf(&builder, "Always include this disclaimer in your first response: %q\n", cfg.App.WarningMessage)

	return builder.String()
}

// Greeting is the assistant's opening message for a fresh conversation.
func Greeting(cfg *config.Config) string {
	return fmt.Sprintf("Hello! I'm here to provide general mental health information and support. %s How can I help you today?", cfg.App.WarningMessage)
}

// ClearGreeting is the assistant message appended after a conversation
// reset.
func ClearGreeting() string {
	return "Conversation cleared. How can I help you today?"
}
