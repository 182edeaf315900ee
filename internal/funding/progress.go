// Package funding computes fundraising progress for gift items and wishlists.
//
// All functions are pure and safe for concurrent use. Percentages are raw
// float64 values that may exceed 100; clamping is a display concern
// (see DisplayPercentage).
package funding

import (
	"errors"
	"fmt"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned for an item that raised money towards a zero goal.
var ErrDivisionByZero = errors.New("goal amount is zero")

// ItemProgress is the funding state of a single gift item.
type ItemProgress struct {
	Percentage   float64         `json:"percentage"`
	Remaining    decimal.Decimal `json:"remaining"`
	IsOverfunded bool            `json:"is_overfunded"`
}

// WishlistProgress is the roll-up over every item of a wishlist.
type WishlistProgress struct {
	TotalGoal   decimal.Decimal `json:"total_goal"`
	TotalRaised decimal.Decimal `json:"total_raised"`
	Percentage  float64         `json:"percentage"`
}

// Item computes the progress of one gift item. A zero goal with nothing
// raised is zero progress; a zero goal with money raised has no defined
// ratio and yields ErrDivisionByZero.
func Item(item models.GiftItem) (ItemProgress, error) {
	current, goal := item.CurrentAmount, item.GoalAmount

	if goal.IsZero() {
		if current.IsZero() {
			return ItemProgress{Remaining: decimal.Zero}, nil
		}
		return ItemProgress{}, fmt.Errorf("item %s raised %s: %w", item.ID.Hex(), current.String(), ErrDivisionByZero)
	}

	return ItemProgress{
		Percentage:   percentOf(current, goal),
		Remaining:    goal.Sub(current),
		IsOverfunded: current.GreaterThan(goal),
	}, nil
}

// Wishlist sums goals and raised amounts in item order. An empty or
// zero-goal list reports zero percent.
func Wishlist(w models.Wishlist) WishlistProgress {
	totalGoal, totalRaised := decimal.Zero, decimal.Zero
	for _, item := range w.Items {
		totalGoal = totalGoal.Add(item.GoalAmount)
		totalRaised = totalRaised.Add(item.CurrentAmount)
	}

	progress := WishlistProgress{TotalGoal: totalGoal, TotalRaised: totalRaised}
	if totalGoal.IsPositive() {
		progress.Percentage = percentOf(totalRaised, totalGoal)
	}
	return progress
}

// DisplayPercentage clamps a raw percentage into [0, 100].
func DisplayPercentage(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func percentOf(part, whole decimal.Decimal) float64 {
	return part.InexactFloat64() / whole.InexactFloat64() * 100
}
