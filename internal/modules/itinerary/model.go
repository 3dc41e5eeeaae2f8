// README: Trip request value object, interest parsing and input validation.
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/types"
)

const (
	MinDays = 1
	MaxDays = 14
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("invalid trip request")

// ValidationError names the offending field. It unwraps to ErrValidation and,
// for tier and day problems, to the pricing sentinel as well.
type ValidationError struct {
	Field  string
	Reason string
	cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrValidation, e.cause}
	}
	return []error{ErrValidation}
}

// TripRequest is built fresh for every submission and never stored.
type TripRequest struct {
	City      string
	Interests []string
	Days      int
	Budget    pricing.Tier
}

// Result is the rendered outcome of one planning request.
type Result struct {
	TripRequest
	TotalCost types.Money
	Itinerary string
}

// ParseInterests splits a comma-delimited list, trimming each entry and dropping empties.
func ParseInterests(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewTripRequest validates raw form input. No network work happens here.
func NewTripRequest(city, interests string, days int, budget string) (TripRequest, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return TripRequest{}, &ValidationError{Field: "city", Reason: "destination is required"}
	}
	if days < MinDays || days > MaxDays {
		return TripRequest{}, &ValidationError{
			Field:  "days",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinDays, MaxDays, days),
			cause:  pricing.ErrInvalidDays,
		}
	}
	tier, err := pricing.ParseTier(budget)
	if err != nil {
		return TripRequest{}, &ValidationError{
			Field:  "budget",
			Reason: fmt.Sprintf("unknown budget tier %q", budget),
			cause:  err,
		}
	}

	return TripRequest{
		City:      city,
		Interests: ParseInterests(interests),
		Days:      days,
		Budget:    tier,
	}, nil
}
