package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/havenai/haven-go/config"
	"github.com/havenai/haven-go/llm"
	"github.com/havenai/haven-go/safety"
)

// Responder turns the current conversation into the next assistant reply.
// It never returns an error: provider failures are converted into a
// user-facing fallback string so the front-end always has text to render.
type Responder struct {
	provider llm.Provider
	detector *safety.Detector
	cfg      *config.Config
	logger   *zap.Logger
}

// NewResponder creates a responder bound to one provider and one detector.
func NewResponder(provider llm.Provider, detector *safety.Detector, cfg *config.Config, logger *zap.Logger) *Responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{
		provider: provider,
		detector: detector,
		cfg:      cfg,
		logger:   logger,
	}
}

// Respond produces the assistant reply for the latest user turn.
//
// If the latest user message contains crisis language, the canned safety
// reply is returned and the provider is not called under any circumstances.
// Otherwise the bounded history window goes to the provider in a single
// attempt and its text is returned verbatim.
func (r *Responder) Respond(ctx context.Context, conv *Conversation) string {
	last := conv.Last()
	if last.Role == llm.RoleUser && r.detector.Detect(last.Content) {
		// Message content is deliberately never logged.
		r.logger.Info("crisis override engaged")
		return safety.CrisisReply(r.cfg)
	}

	reply, err := r.provider.Complete(ctx, conv.Window(HistoryWindow))
	if err != nil {
		r.logger.Warn("completion provider failed",
			zap.String("provider", r.provider.Name()),
			zap.Error(err))
		return fmt.Sprintf("I'm having trouble responding right now. Please try again later. Error: %v", err)
	}

	return reply.Content
}
