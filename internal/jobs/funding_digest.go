package jobs

import (
	"context"
	"fmt"

	"github.com/Dias221467/Giftwish/internal/funding"
	"github.com/Dias221467/Giftwish/internal/metrics"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DigestResult totals one digest pass.
type DigestResult struct {
	Wishlists    int
	Items        int
	Overfunded   int
	FlagMismatch int
}

// FundingDigest logs the funding state of every wishlist and publishes it
// as gauges.
type FundingDigest struct {
	Wishlists repository.WishlistRepository
	Metrics   *metrics.Metrics
}

// NewFundingDigest creates a new FundingDigest. m may be nil.
func NewFundingDigest(wishlists repository.WishlistRepository, m *metrics.Metrics) *FundingDigest {
	return &FundingDigest{
		Wishlists: wishlists,
		Metrics:   m,
	}
}

// Run scans all wishlists once.
func (d *FundingDigest) Run(ctx context.Context) (DigestResult, error) {
	lists, err := d.Wishlists.GetAllWishlists(ctx)
	if err != nil {
		return DigestResult{}, fmt.Errorf("failed to fetch wishlists: %w", err)
	}

	result := DigestResult{Wishlists: len(lists)}
	snapshot := metrics.FundingSnapshot{Percent: make(map[string]float64, len(lists))}

	for _, w := range lists {
		progress := funding.Wishlist(w)
		summary := funding.Summary(w)

		result.Items += summary.Items
		result.Overfunded += summary.Overfunded
		result.FlagMismatch += summary.FlagMismatch
		snapshot.Percent[w.ID.Hex()] = progress.Percentage

		logger.Log.WithFields(logrus.Fields{
			"wishlist_id": w.ID.Hex(),
			"title":       w.Title,
			"raised":      progress.TotalRaised.String(),
			"goal":        progress.TotalGoal.String(),
			"percentage":  progress.Percentage,
			"completed":   summary.Completed,
			"items":       summary.Items,
		}).Info("Wishlist funding")

		for _, item := range w.Items {
			if !item.FlagMismatch() {
				continue
			}
			logger.Log.WithFields(logrus.Fields{
				"wishlist_id":  w.ID.Hex(),
				"item_id":      item.ID.Hex(),
				"is_completed": item.IsCompleted,
				"raised":       item.CurrentAmount.String(),
				"goal":         item.GoalAmount.String(),
			}).Warn("Completion flag disagrees with amounts")
		}
	}

	snapshot.Overfunded = result.Overfunded
	snapshot.FlagMismatch = result.FlagMismatch
	d.Metrics.PublishFunding(snapshot)

	logger.Log.WithFields(logrus.Fields{
		"wishlists":     result.Wishlists,
		"items":         result.Items,
		"overfunded":    result.Overfunded,
		"flag_mismatch": result.FlagMismatch,
	}).Info("Funding digest completed")
	return result, nil
}
