package safety

import (
	"fmt"
	"strings"

	"github.com/havenai/haven-go/config"
)

// CrisisReply renders the canned safety response. It is fully static with
// respect to user input and never involves the completion provider, so a
// crisis reply can never be model-generated.
func CrisisReply(cfg *config.Config) string {
	var builder strings.Builder

	builder.WriteString("I hear that you're in tremendous pain, and I'm deeply concerned about your safety.\n\n")
	builder.WriteString("**Please reach out for immediate help:**\n")
	fmt.Fprintf(&builder, "- **Crisis Hotline:** %s\n", cfg.App.CrisisHotline)
	fmt.Fprintf(&builder, "- **Crisis Text Line:** %s\n", cfg.App.CrisisText)
	builder.WriteString("- **Emergency Services:** 911\n\n")
	builder.WriteString("You don't have to go through this alone. There are people who want to help you right now.")

	return builder.String()
}
