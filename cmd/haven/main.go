package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/havenai/haven-go/chat"
	"github.com/havenai/haven-go/config"
	"github.com/havenai/haven-go/core"
	"github.com/havenai/haven-go/llm"
	"github.com/havenai/haven-go/llm/gemini"
	"github.com/havenai/haven-go/llm/openai"
	"github.com/havenai/haven-go/safety"
)

func main() {
	var (
		configPath = flag.String("config", "config.toml", "Path to the TOML configuration file")
		provider   = flag.String("provider", "openai", "Completion provider to use (openai or gemini)")
	)
	flag.Parse()

	// .env is optional; real deployments set the credential directly in the
	// environment.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("configuration error", zap.String("path", *configPath), zap.Error(err))
	}

	backend, err := newProvider(*provider, cfg)
	if err != nil {
		logger.Fatal("provider setup failed", zap.String("provider", *provider), zap.Error(err))
	}

	responder := chat.NewResponder(backend, safety.NewDetector(), cfg, logger)
	step := newSessionStep(responder, cfg, os.Stdin, os.Stdout)

	node := core.NewNode[SessionState, turn, turnResult](step)
	node.AddSuccessor(node, core.ActionContinue)
	flow := core.NewFlow[SessionState](node)

	state := SessionState{Conversation: chat.New(cfg)}

	logger.Info("session started",
		zap.String("provider", backend.Name()),
		zap.String("model", cfg.Model.DefaultModel))

	flow.Run(&state)

	logger.Info("session ended")
}

// newProvider builds the completion backend named on the command line,
// configured with the model parameters from the config file. Credentials
// come from the environment only.
func newProvider(name string, cfg *config.Config) (llm.Provider, error) {
	switch name {
	case "openai":
		providerConfig, err := openai.NewConfig(cfg.Model.DefaultModel, cfg.Model.MaxTokens, cfg.Model.Temperature)
		if err != nil {
			return nil, err
		}
		return openai.NewClient(providerConfig)
	case "gemini":
		providerConfig, err := gemini.NewConfig(cfg.Model.DefaultModel, cfg.Model.MaxTokens, cfg.Model.Temperature)
		if err != nil {
			return nil, err
		}
		return gemini.NewClient(context.Background(), providerConfig)
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
