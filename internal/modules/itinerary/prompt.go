package itinerary

import (
	"fmt"
	"strings"

	"travelplanner/internal/ai"
)

const (
	DefaultStyle = "well-organized"
	userTurn     = "Plan my trip"

	// Used in place of the interests clause when the user leaves it blank.
	noInterests = "a mix of popular highlights"
)

// BuildPrompt embeds the trip parameters in the system instruction; the user turn is fixed.
func BuildPrompt(req TripRequest, style string) ai.Prompt {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}
	interests := noInterests
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	system := fmt.Sprintf(
		"You are a helpful AI travel assistant. Create a %d-day itinerary for %s based on %s with a %s budget. Provide a concise, %s itinerary.",
		req.Days, req.City, interests, req.Budget, style,
	)

	return ai.Prompt{
		Operation: "itinerary",
		System:    system,
		Messages:  []ai.Message{{Role: ai.RoleUser, Content: userTurn}},
	}
}
