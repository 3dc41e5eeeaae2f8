// Package aitest provides an in-memory LLM provider for tests.
package aitest

import (
	"context"
	"sync"

	"travelplanner/internal/ai"
)

// Stub records every prompt and answers with Reply or Err.
type Stub struct {
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []ai.Prompt
}

func (s *Stub) Name() string { return "stub" }

func (s *Stub) Close() error { return nil }

func (s *Stub) Complete(ctx context.Context, prompt ai.Prompt) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Prompts returns the prompts received so far.
func (s *Stub) Prompts() []ai.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ai.Prompt, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Calls returns how many completion requests were made.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
