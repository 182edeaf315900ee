package services

import (
	"context"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/shopspring/decimal"
)

// Profile is a user together with the funding state of their wishlists.
type Profile struct {
	models.User
	Name        string         `json:"name"`
	Wishlists   []WishlistCard `json:"wishlists"`
	TotalRaised string         `json:"total_raised"`
}

// WishlistCard is the compact wishlist shown on a profile.
type WishlistCard struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	IsPublic bool                 `json:"is_public"`
	Items    int                  `json:"items"`
	Progress WishlistProgressView `json:"progress"`
}

// UserService encapsulates profile lookups.
type UserService struct {
	repo      repository.UserRepository
	wishlists *WishlistService
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, wishlists *WishlistService) *UserService {
	return &UserService{
		repo:      repo,
		wishlists: wishlists,
	}
}

// GetProfile returns the user with a progress card per wishlist.
func (s *UserService) GetProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	lists, err := s.wishlists.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	raised := decimal.Zero
	cards := make([]WishlistCard, 0, len(lists))
	for _, w := range lists {
		raised = raised.Add(w.Progress.TotalRaised)
		cards = append(cards, WishlistCard{
			ID:       w.ID.Hex(),
			Title:    w.Title,
			IsPublic: w.IsPublic,
			Items:    len(w.Items),
			Progress: w.Progress,
		})
	}

	return &Profile{
		User:        *user,
		Name:        user.Name(),
		Wishlists:   cards,
		TotalRaised: s.wishlists.money(raised),
	}, nil
}

// GetWishlists returns the wishlists of an existing user.
func (s *UserService) GetWishlists(ctx context.Context, id string) ([]WishlistView, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.wishlists.ListByUser(ctx, user.ID)
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := parseID("user", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(ctx, objID)
}
