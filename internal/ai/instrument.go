package ai

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"travelplanner/internal/metrics"
)

// Instrumented decorates a provider with metrics and structured logs.
type Instrumented struct {
	next LLMProvider
	log  *zap.Logger
}

func NewInstrumented(next LLMProvider, log *zap.Logger) *Instrumented {
	return &Instrumented{
		next: next,
		log:  log.With(zap.String("provider", next.Name())),
	}
}

func (i *Instrumented) Name() string { return i.next.Name() }

func (i *Instrumented) Close() error { return i.next.Close() }

func (i *Instrumented) Complete(ctx context.Context, prompt Prompt) (string, error) {
	start := time.Now()
	text, err := i.next.Complete(ctx, prompt)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	metrics.ObserveLLM(i.next.Name(), prompt.Operation, outcome, elapsed)

	if err != nil {
		i.log.Warn("llm completion failed",
			zap.String("operation", prompt.Operation),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return "", err
	}
	i.log.Debug("llm completion",
		zap.String("operation", prompt.Operation),
		zap.Duration("elapsed", elapsed),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrTimeout):
		return metrics.OutcomeTimeout
	case errors.Is(err, ErrUnauthorized):
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
