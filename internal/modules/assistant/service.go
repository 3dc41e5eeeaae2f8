// README: Free-form travel Q&A; forwards one question per call, keeps no history.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelplanner/internal/ai"
)

var ErrEmptyQuery = errors.New("question must not be empty")

type Service struct {
	llm ai.LLMProvider
}

func NewService(llm ai.LLMProvider) *Service {
	return &Service{llm: llm}
}

// Ask sends query as a single user turn with no system instruction.
func (s *Service) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	answer, err := s.llm.Complete(ctx, ai.UserPrompt("ask", query))
	if err != nil {
		return "", fmt.Errorf("ask assistant: %w", err)
	}
	return answer, nil
}
