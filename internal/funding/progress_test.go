package funding

import (
	"testing"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gift(current, goal int64) models.GiftItem {
	return models.GiftItem{
		CurrentAmount: decimal.NewFromInt(current),
		GoalAmount:    decimal.NewFromInt(goal),
	}
}

func TestItem_PartialFunding(t *testing.T) {
	p, err := Item(gift(75000, 189990))
	require.NoError(t, err)

	assert.InDelta(t, 39.48, p.Percentage, 0.005)
	assert.Equal(t, "114990", p.Remaining.String())
	assert.False(t, p.IsOverfunded)
}

func TestItem_ExactlyFunded(t *testing.T) {
	p, err := Item(gift(120000, 120000))
	require.NoError(t, err)

	assert.Equal(t, 100.0, p.Percentage)
	assert.True(t, p.Remaining.IsZero())
	assert.False(t, p.IsOverfunded)
}

func TestItem_OverfundedIsNotClamped(t *testing.T) {
	p, err := Item(gift(15000, 10000))
	require.NoError(t, err)

	assert.Equal(t, 150.0, p.Percentage)
	assert.Equal(t, "-5000", p.Remaining.String())
	assert.True(t, p.IsOverfunded)
	assert.Equal(t, 100.0, DisplayPercentage(p.Percentage))
}

func TestItem_ZeroGoal(t *testing.T) {
	t.Run("nothing raised", func(t *testing.T) {
		p, err := Item(gift(0, 0))
		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Percentage)
		assert.True(t, p.Remaining.IsZero())
		assert.False(t, p.IsOverfunded)
	})

	t.Run("money raised", func(t *testing.T) {
		_, err := Item(gift(500, 0))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestItem_PercentageZeroIffNothingRaised(t *testing.T) {
	goals := []int64{1, 999, 189990, 5_000_000}
	for _, goal := range goals {
		zero, err := Item(gift(0, goal))
		require.NoError(t, err)
		assert.Equal(t, 0.0, zero.Percentage, "goal %d", goal)

		some, err := Item(gift(1, goal))
		require.NoError(t, err)
		assert.Greater(t, some.Percentage, 0.0, "goal %d", goal)
	}
}

func TestWishlist(t *testing.T) {
	tests := []struct {
		name       string
		items      []models.GiftItem
		goal       string
		raised     string
		percentage float64
	}{
		{
			name:   "empty",
			items:  nil,
			goal:   "0",
			raised: "0",
		},
		{
			name:       "ordered sum",
			items:      []models.GiftItem{gift(75000, 189990), gift(120000, 120000), gift(5000, 40010)},
			goal:       "350000",
			raised:     "200000",
			percentage: 200000.0 / 350000.0 * 100,
		},
		{
			name:       "over raised is computed, not rejected",
			items:      []models.GiftItem{gift(30000, 10000), gift(0, 10000)},
			goal:       "20000",
			raised:     "30000",
			percentage: 150,
		},
		{
			name:   "zero goals",
			items:  []models.GiftItem{gift(0, 0), gift(0, 0)},
			goal:   "0",
			raised: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Wishlist(models.Wishlist{Items: tt.items})
			assert.Equal(t, tt.goal, p.TotalGoal.String())
			assert.Equal(t, tt.raised, p.TotalRaised.String())
			assert.InDelta(t, tt.percentage, p.Percentage, 1e-9)
		})
	}
}

func TestDisplayPercentage(t *testing.T) {
	assert.Equal(t, 0.0, DisplayPercentage(-3))
	assert.Equal(t, 42.5, DisplayPercentage(42.5))
	assert.Equal(t, 100.0, DisplayPercentage(100))
	assert.Equal(t, 100.0, DisplayPercentage(230))
}
