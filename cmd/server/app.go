package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/study-planner/internal/agents"
	"github.com/example/study-planner/internal/config"
	"github.com/example/study-planner/internal/logger"
	"github.com/example/study-planner/internal/orchestrator"
	"github.com/example/study-planner/internal/providers/llm"
)

type app struct {
	cfg      config.Config
	log      *logger.Logger
	registry *llm.Registry
	orch     *orchestrator.Orchestrator
}

// newApp loads configuration and wires the orchestrator. An unknown provider
// name fails here instead of at the first request.
func newApp(cmd *cobra.Command, provider string) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if provider != "" {
		cfg.Provider = strings.ToLower(strings.TrimSpace(provider))
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	registry := llm.NewRegistry(cfg)
	client, err := registry.Select(cfg.Provider)
	if err != nil {
		return nil, err
	}
	logProvider(log, cfg, client)

	planner := &agents.LLMPlanner{Registry: registry, Provider: cfg.Provider}
	orch := orchestrator.New(planner, agents.PlanVerifier{}, log, cfg.Timeout)

	return &app{cfg: cfg, log: log, registry: registry, orch: orch}, nil
}

func logProvider(log *logger.Logger, cfg config.Config, client llm.Client) {
	if !client.Configured() {
		log.Info("no API key for provider, plans will use the local template", "provider", client.Name())
	}
	if active, ok := cfg.Active(); ok {
		log.Info("provider selected",
			"provider", cfg.Provider,
			"model", active.Model,
			"temperature", active.Temperature,
			"max_tokens", active.MaxTokens,
			"timeout", cfg.Timeout.String(),
		)
	}
}

func (a *app) Close() {
	if err := a.registry.Close(); err != nil {
		a.log.Warn("closing provider clients", "error", err.Error())
	}
	a.log.Sync()
}
