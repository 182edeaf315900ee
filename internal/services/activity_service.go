package services

import (
	"context"
	"time"

	"github.com/Dias221467/Giftwish/internal/feed"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// ActivityService renders the social feed.
type ActivityService struct {
	repo      repository.ActivityRepository
	users     repository.UserRepository
	presenter *feed.Presenter
}

func NewActivityService(repo repository.ActivityRepository, users repository.UserRepository, presenter *feed.Presenter) *ActivityService {
	return &ActivityService{repo: repo, users: users, presenter: presenter}
}

// GetFeed returns the newest activities across all users, rendered relative to now.
func (s *ActivityService) GetFeed(ctx context.Context, limit int, now time.Time) ([]feed.Entry, error) {
	limit = clampLimit(limit)
	activities, err := s.repo.GetRecentActivities(ctx, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load feed")
		return nil, err
	}
	return s.presenter.PresentAll(activities, now), nil
}

// GetUserFeed returns the activities of one user.
func (s *ActivityService) GetUserFeed(ctx context.Context, userID string, limit int, now time.Time) ([]feed.Entry, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByID(ctx, id); err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	activities, err := s.repo.GetUserActivities(ctx, id, limit)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"limit":   limit,
		}).Error("Failed to load user feed")
		return nil, err
	}
	return s.presenter.PresentAll(activities, now), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultFeedLimit
	case limit > MaxFeedLimit:
		return MaxFeedLimit
	}
	return limit
}
