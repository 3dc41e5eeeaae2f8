// README: Itinerary requester; one blocking completion call per trip request.
package itinerary

import (
	"context"
	"fmt"

	"travelplanner/internal/ai"
)

type Service struct {
	llm   ai.LLMProvider
	style string
}

// NewService binds the requester to a provider. style is the adjective used in the
// system instruction ("futuristic-styled", "well-organized").
func NewService(llm ai.LLMProvider, style string) *Service {
	return &Service{llm: llm, style: style}
}

// Request returns the provider's completion verbatim. It does not retry.
func (s *Service) Request(ctx context.Context, req TripRequest) (string, error) {
	text, err := s.llm.Complete(ctx, BuildPrompt(req, s.style))
	if err != nil {
		return "", fmt.Errorf("request itinerary for %s: %w", req.City, err)
	}
	return text, nil
}
