package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/types"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name      string
		tier      Tier
		days      int
		wantDaily int64
		wantTotal int64
	}{
		{name: "Budget single day", tier: TierBudget, days: 1, wantDaily: 60, wantTotal: 60},
		{name: "Mid-Range Paris week (5 days)", tier: TierMidRange, days: 5, wantDaily: 160, wantTotal: 800},
		{name: "Luxury two weeks", tier: TierLuxury, days: 14, wantDaily: 400, wantTotal: 5600},
		{name: "Budget three days", tier: TierBudget, days: 3, wantDaily: 60, wantTotal: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.tier, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDaily, got.PerDay.Amount)
			assert.Equal(t, tt.wantTotal, got.Total.Amount)
			assert.Equal(t, "USD", got.Total.Currency)
			assert.Equal(t, tt.days, got.Days)

			var sum int64
			for _, c := range Categories {
				sum += got.Breakdown[c]
			}
			assert.Equal(t, got.Total.Amount, sum, "breakdown must add up to the total")
		})
	}
}

func TestEstimate_InvalidTier(t *testing.T) {
	for _, tier := range []Tier{"", "Premium", "budget"} {
		got, err := Estimate(tier, 3)
		assert.ErrorIs(t, err, ErrInvalidTier, "tier %q", tier)
		assert.Zero(t, got.Total.Amount)
	}
}

func TestEstimate_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1, -14} {
		_, err := Estimate(TierBudget, days)
		assert.ErrorIs(t, err, ErrInvalidDays, "days %d", days)
	}
}

func TestEstimate_StrictlyIncreasingInDays(t *testing.T) {
	for _, tier := range Tiers() {
		prev := int64(0)
		for d := 1; d <= 30; d++ {
			e, err := Estimate(tier, d)
			require.NoError(t, err)
			assert.Greater(t, e.Total.Amount, prev, "tier %s day %d", tier, d)
			prev = e.Total.Amount
		}
	}
}

func TestEstimate_TiersOrderedByCost(t *testing.T) {
	for d := 1; d <= 14; d++ {
		b, err := Estimate(TierBudget, d)
		require.NoError(t, err)
		m, err := Estimate(TierMidRange, d)
		require.NoError(t, err)
		l, err := Estimate(TierLuxury, d)
		require.NoError(t, err)

		assert.Less(t, b.Total.Amount, m.Total.Amount)
		assert.Less(t, m.Total.Amount, l.Total.Amount)
	}
}

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"Budget":    TierBudget,
		" budget ":  TierBudget,
		"Mid-Range": TierMidRange,
		"mid-range": TierMidRange,
		"midrange":  TierMidRange,
		"Mid Range": TierMidRange,
		"LUXURY":    TierLuxury,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTier("Invalid budget category")
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestTable_ReturnsCopy(t *testing.T) {
	tbl := Table()
	tbl[TierBudget][CategoryHotel] = 9999

	daily, err := DailyCost(TierBudget)
	require.NoError(t, err)
	assert.Equal(t, int64(60), daily)
}

func TestEstimate_ReturnsCostEstimate(t *testing.T) {
	got, err := Estimate(TierLuxury, 2)
	require.NoError(t, err)
	assert.Equal(t, CostEstimate{
		Tier:   TierLuxury,
		Days:   2,
		PerDay: types.USD(400),
		Total:  types.USD(800),
		Breakdown: map[Category]int64{
			CategoryHotel:       400,
			CategoryFood:        100,
			CategoryTransport:   100,
			CategoryAttractions: 100,
			CategoryMisc:        100,
		},
	}, got)
}
