// README: Budget tiers and the static per-day cost table.
package pricing

import (
	"errors"
	"strings"

	"travelplanner/internal/types"
)

var (
	ErrInvalidTier = errors.New("invalid budget tier")
	ErrInvalidDays = errors.New("day count must be at least 1")
)

type Tier string

const (
	TierBudget   Tier = "Budget"
	TierMidRange Tier = "Mid-Range"
	TierLuxury   Tier = "Luxury"
)

type Category string

const (
	CategoryHotel       Category = "Hotel"
	CategoryFood        Category = "Food"
	CategoryTransport   Category = "Transport"
	CategoryAttractions Category = "Attractions"
	CategoryMisc        Category = "Misc"
)

// Categories lists the cost categories in display order.
var Categories = []Category{
	CategoryHotel,
	CategoryFood,
	CategoryTransport,
	CategoryAttractions,
	CategoryMisc,
}

// costTable holds per-day USD costs. Read-only after init.
var costTable = map[Tier]map[Category]int64{
	TierBudget: {
		CategoryHotel: 30, CategoryFood: 10, CategoryTransport: 5, CategoryAttractions: 10, CategoryMisc: 5,
	},
	TierMidRange: {
		CategoryHotel: 80, CategoryFood: 25, CategoryTransport: 15, CategoryAttractions: 25, CategoryMisc: 15,
	},
	TierLuxury: {
		CategoryHotel: 200, CategoryFood: 50, CategoryTransport: 50, CategoryAttractions: 50, CategoryMisc: 50,
	},
}

// Tiers returns the known tiers ordered by ascending daily cost.
func Tiers() []Tier {
	return []Tier{TierBudget, TierMidRange, TierLuxury}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := costTable[t]
	return ok
}

// ParseTier accepts the canonical names case-insensitively plus a few spellings of Mid-Range.
func ParseTier(s string) (Tier, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "budget":
		return TierBudget, nil
	case "mid-range", "midrange", "mid range", "mid_range":
		return TierMidRange, nil
	case "luxury":
		return TierLuxury, nil
	}
	return "", ErrInvalidTier
}

// Table returns a copy of the per-day cost table.
func Table() map[Tier]map[Category]int64 {
	out := make(map[Tier]map[Category]int64, len(costTable))
	for tier, costs := range costTable {
		row := make(map[Category]int64, len(costs))
		for c, v := range costs {
			row[c] = v
		}
		out[tier] = row
	}
	return out
}

// CostEstimate is the computed trip cost for one tier and day count.
type CostEstimate struct {
	Tier      Tier
	Days      int
	PerDay    types.Money
	Total     types.Money
	Breakdown map[Category]int64 // per-category cost over the whole trip
}
