// README: Pricing service computes trip cost estimates from the static table.
package pricing

import (
	"fmt"

	"travelplanner/internal/types"
)

// DailyCost returns the sum of per-day category costs for tier.
func DailyCost(tier Tier) (int64, error) {
	costs, ok := costTable[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTier, string(tier))
	}
	var sum int64
	for _, v := range costs {
		sum += v
	}
	return sum, nil
}

// Estimate returns days × the tier's daily cost. Pure and deterministic.
func Estimate(tier Tier, days int) (CostEstimate, error) {
	perDay, err := DailyCost(tier)
	if err != nil {
		return CostEstimate{}, err
	}
	if days < 1 {
		return CostEstimate{}, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	breakdown := make(map[Category]int64, len(Categories))
	for c, v := range costTable[tier] {
		breakdown[c] = v * int64(days)
	}

	return CostEstimate{
		Tier:      tier,
		Days:      days,
		PerDay:    types.USD(perDay),
		Total:     types.USD(perDay * int64(days)),
		Breakdown: breakdown,
	}, nil
}
