package services

import (
	"context"
	"fmt"

	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	ActionLike       = "like"
	ActionFollow     = "follow"
	ActionContribute = "contribute"
)

// ActionRecorder counts accepted actions; *metrics.Metrics satisfies it.
type ActionRecorder interface {
	ObserveAction(action string)
}

// ActionService accepts social actions. Nothing is persisted: the request is
// validated against the data source, logged and counted.
type ActionService struct {
	wishlists repository.WishlistRepository
	users     repository.UserRepository
	recorder  ActionRecorder
}

func NewActionService(wishlists repository.WishlistRepository, users repository.UserRepository, recorder ActionRecorder) *ActionService {
	return &ActionService{wishlists: wishlists, users: users, recorder: recorder}
}

func (s *ActionService) Like(ctx context.Context, wishlistID string) error {
	id, err := parseID("wishlist", wishlistID)
	if err != nil {
		return err
	}
	w, err := s.wishlists.GetWishlistByID(ctx, id)
	if err != nil {
		return err
	}

	s.record(ActionLike, logrus.Fields{"wishlist_id": wishlistID, "likes": w.Likes})
	return nil
}

func (s *ActionService) Follow(ctx context.Context, userID string) error {
	id, err := parseID("user", userID)
	if err != nil {
		return err
	}
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	s.record(ActionFollow, logrus.Fields{"user_id": userID, "followers": u.Followers})
	return nil
}

func (s *ActionService) Contribute(ctx context.Context, wishlistID, itemID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("contribution of %s: %w", amount.String(), ErrInvalidAmount)
	}
	wID, err := parseID("wishlist", wishlistID)
	if err != nil {
		return err
	}
	iID, err := parseID("item", itemID)
	if err != nil {
		return err
	}

	w, err := s.wishlists.GetWishlistByID(ctx, wID)
	if err != nil {
		return err
	}
	item, ok := w.Item(iID)
	if !ok {
		return fmt.Errorf("item %s in wishlist %s: %w", itemID, wishlistID, repository.ErrNotFound)
	}

	s.record(ActionContribute, logrus.Fields{
		"wishlist_id": wishlistID,
		"item_id":     itemID,
		"amount":      amount.String(),
		"raised":      item.CurrentAmount.String(),
		"goal":        item.GoalAmount.String(),
	})
	return nil
}

func (s *ActionService) record(action string, fields logrus.Fields) {
	logger.Log.WithFields(fields).WithField("action", action).Info("Action received")
	if s.recorder != nil {
		s.recorder.ObserveAction(action)
	}
}
