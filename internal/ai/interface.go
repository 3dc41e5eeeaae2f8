package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with hosted chat models.
// Implementations send exactly one completion request per call and never retry.
type LLMProvider interface {
	// Complete sends prompt and returns the model's text verbatim.
	// Failures wrap ErrUnauthorized, ErrTimeout or ErrProvider.
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Name identifies the provider in logs and metrics (e.g. "groq", "gemini").
	Name() string

	Close() error
}
