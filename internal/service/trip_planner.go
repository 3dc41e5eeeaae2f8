package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/modules/pricing"
)

// Requester is the slice of itinerary.Service the planner needs.
type Requester interface {
	Request(ctx context.Context, req itinerary.TripRequest) (string, error)
}

// PlanInput is the raw form submission.
type PlanInput struct {
	City      string
	Interests string
	Days      int
	Budget    string
}

// TripPlanner runs validation, cost estimation and the itinerary request in sequence.
type TripPlanner struct {
	requester Requester
	log       *zap.Logger
}

func NewTripPlanner(requester Requester, log *zap.Logger) *TripPlanner {
	return &TripPlanner{requester: requester, log: log}
}

// Plan returns a nil result on any failure; nothing partial is kept.
func (p *TripPlanner) Plan(ctx context.Context, in PlanInput) (*itinerary.Result, error) {
	req, err := itinerary.NewTripRequest(in.City, in.Interests, in.Days, in.Budget)
	if err != nil {
		return nil, err
	}

	estimate, err := pricing.Estimate(req.Budget, req.Days)
	if err != nil {
		return nil, fmt.Errorf("estimate cost: %w", err)
	}

	text, err := p.requester.Request(ctx, req)
	if err != nil {
		p.log.Warn("itinerary request failed",
			zap.String("city", req.City),
			zap.Int("days", req.Days),
			zap.String("budget", string(req.Budget)),
			zap.Error(err),
		)
		return nil, err
	}

	p.log.Info("itinerary planned",
		zap.String("city", req.City),
		zap.Int("days", req.Days),
		zap.String("budget", string(req.Budget)),
		zap.Int64("total_cost", estimate.Total.Amount),
	)

	return &itinerary.Result{
		TripRequest: req,
		TotalCost:   estimate.Total,
		Itinerary:   text,
	}, nil
}

// Format renders the markdown display string shown under the form.
func Format(r *itinerary.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📍 **Destination:** %s\n", r.City)
	fmt.Fprintf(&b, "📆 **Duration:** %d %s\n", r.Days, plural(r.Days, "day", "days"))
	fmt.Fprintf(&b, "💰 **Estimated Cost:** %s\n", r.TotalCost)
	b.WriteString("\n📝 **AI Itinerary:**\n")
	b.WriteString(r.Itinerary)
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
