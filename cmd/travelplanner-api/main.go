// README: Entry point; loads config, wires the LLM provider and services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"travelplanner/internal/ai"
	"travelplanner/internal/config"
	httptransport "travelplanner/internal/http"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/infra"
	"travelplanner/internal/modules/assistant"
	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "travelplanner-api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.New(ctx, ai.Config{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
	})
	if err != nil {
		log.Error("llm provider init failed", zap.Error(err))
		return err
	}
	llm := ai.NewInstrumented(provider, log)
	defer llm.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		if err := infra.PingRedis(ctx, redisClient); err != nil {
			log.Warn("redis unreachable, rate limiter will fail open", zap.Error(err))
		}
		limiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window, log)
	}

	itinerarySvc := itinerary.NewService(llm, config.StyleForTheme(cfg.UI.Theme))
	planner := service.NewTripPlanner(itinerarySvc, log)
	assistantSvc := assistant.NewService(llm)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:   planner,
		Assistant: assistantSvc,
		Log:       log,
		Theme:     cfg.UI.Theme,
		AITimeout: cfg.AI.Timeout,
		Limiter:   limiter,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("provider", llm.Name()),
			zap.String("theme", cfg.UI.Theme),
			zap.Bool("rate_limit", limiter != nil),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("http server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
