package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"travelplanner/internal/ai"
	"travelplanner/internal/config"
	"travelplanner/internal/infra"
	"travelplanner/internal/modules/assistant"
	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/service"
)

// app holds what the LLM-backed commands need. Built lazily so estimate and
// tiers work without a credential.
type app struct {
	planner   *service.TripPlanner
	assistant *assistant.Service
	timeout   time.Duration
	close     func()
}

// appFactory is swapped in tests.
type appFactory func(ctx context.Context) (*app, error)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(loadApp)
}

func newRootCmdWith(factory appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "plan-cli",
		Short:         "AI travel planner",
		Long:          "Estimate trip costs and generate AI itineraries from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEstimateCmd(),
		newTiersCmd(),
		newPlanCmd(factory),
		newAskCmd(factory),
	)
	return root
}

func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := infra.NewLogger(cfg.Log.Level, "console")
	if err != nil {
		return nil, err
	}

	provider, err := ai.New(ctx, ai.Config{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
	})
	if err != nil {
		return nil, err
	}
	llm := ai.NewInstrumented(provider, log)

	return &app{
		planner:   service.NewTripPlanner(itinerary.NewService(llm, config.StyleForTheme(cfg.UI.Theme)), log),
		assistant: assistant.NewService(llm),
		timeout:   cfg.AI.Timeout,
		close: func() {
			_ = llm.Close()
			_ = log.Sync()
		},
	}, nil
}

func withApp(cmd *cobra.Command, factory appFactory, fn func(ctx context.Context, a *app) error) error {
	a, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	if a.close != nil {
		defer a.close()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()
	return fn(ctx, a)
}
