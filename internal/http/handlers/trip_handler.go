// README: Trip handlers for itinerary planning, cost estimates and the tier table.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/service"
)

type TripHandler struct {
	planner Planner
	timeout time.Duration
}

func NewTripHandler(planner Planner, timeout time.Duration) *TripHandler {
	return &TripHandler{planner: planner, timeout: timeout}
}

type planReq struct {
	City      string `json:"city"`
	Interests string `json:"interests"`
	Days      int    `json:"days"`
	Budget    string `json:"budget"`
}

type planResp struct {
	City      string   `json:"city"`
	Interests []string `json:"interests"`
	Days      int      `json:"days"`
	Budget    string   `json:"budget"`
	TotalCost int64    `json:"total_cost"`
	Currency  string   `json:"currency"`
	Itinerary string   `json:"itinerary"`
	Display   string   `json:"display"`
}

// Plan handles POST /api/itineraries.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := withAITimeout(c, h.timeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, service.PlanInput{
		City:      req.City,
		Interests: req.Interests,
		Days:      req.Days,
		Budget:    req.Budget,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, planResp{
		City:      res.City,
		Interests: res.Interests,
		Days:      res.Days,
		Budget:    string(res.Budget),
		TotalCost: res.TotalCost.Amount,
		Currency:  res.TotalCost.Currency,
		Itinerary: res.Itinerary,
		Display:   service.Format(res),
	})
}

type estimateReq struct {
	Days   int    `json:"days"`
	Budget string `json:"budget"`
}

type estimateResp struct {
	Budget    string           `json:"budget"`
	Days      int              `json:"days"`
	PerDay    int64            `json:"per_day"`
	Total     int64            `json:"total"`
	Currency  string           `json:"currency"`
	Breakdown map[string]int64 `json:"breakdown"`
}

// Estimate handles POST /api/estimates. No provider call is made.
func (h *TripHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tier, err := pricing.ParseTier(req.Budget)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	est, err := pricing.Estimate(tier, req.Days)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	breakdown := make(map[string]int64, len(est.Breakdown))
	for cat, amount := range est.Breakdown {
		breakdown[string(cat)] = amount
	}
	writeJSON(c, http.StatusOK, estimateResp{
		Budget:    string(est.Tier),
		Days:      est.Days,
		PerDay:    est.PerDay.Amount,
		Total:     est.Total.Amount,
		Currency:  est.Total.Currency,
		Breakdown: breakdown,
	})
}

type tierResp struct {
	Name   string           `json:"name"`
	PerDay int64            `json:"per_day"`
	Costs  map[string]int64 `json:"costs"`
}

// Tiers handles GET /api/budget-tiers.
func (h *TripHandler) Tiers(c *gin.Context) {
	table := pricing.Table()
	out := make([]tierResp, 0, len(table))
	for _, tier := range pricing.Tiers() {
		costs := make(map[string]int64, len(pricing.Categories))
		var perDay int64
		for _, cat := range pricing.Categories {
			costs[string(cat)] = table[tier][cat]
			perDay += table[tier][cat]
		}
		out = append(out, tierResp{Name: string(tier), PerDay: perDay, Costs: costs})
	}
	writeJSON(c, http.StatusOK, gin.H{"tiers": out, "currency": "USD", "categories": pricing.Categories})
}
