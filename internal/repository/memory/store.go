// Package memory serves the repositories from an in-process dataset.
// Returned values are copies; callers cannot change the store.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds an immutable dataset.
type Store struct {
	data mockdata.Dataset
}

// NewStore wraps data. Activities are kept newest first.
func NewStore(data mockdata.Dataset) *Store {
	activities := append([]models.Activity(nil), data.Activities...)
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	data.Activities = activities
	return &Store{data: data}
}

// Users returns the store as a repository.UserRepository.
func (s *Store) Users() repository.UserRepository { return userRepository{s} }

// Wishlists returns the store as a repository.WishlistRepository.
func (s *Store) Wishlists() repository.WishlistRepository { return wishlistRepository{s} }

// Activities returns the store as a repository.ActivityRepository.
func (s *Store) Activities() repository.ActivityRepository { return activityRepository{s} }

type userRepository struct{ s *Store }

func (r userRepository) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.s.data.Users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id.Hex(), repository.ErrNotFound)
}

func (r userRepository) GetAllUsers(_ context.Context) ([]models.User, error) {
	return append([]models.User{}, r.s.data.Users...), nil
}

type wishlistRepository struct{ s *Store }

func (r wishlistRepository) GetWishlistByID(_ context.Context, id primitive.ObjectID) (*models.Wishlist, error) {
	for _, w := range r.s.data.Wishlists {
		if w.ID == id {
			w = copyWishlist(w)
			return &w, nil
		}
	}
	return nil, fmt.Errorf("wishlist %s: %w", id.Hex(), repository.ErrNotFound)
}

func (r wishlistRepository) GetAllWishlists(_ context.Context) ([]models.Wishlist, error) {
	return r.filter(func(models.Wishlist) bool { return true }), nil
}

func (r wishlistRepository) GetWishlistsByUser(_ context.Context, userID primitive.ObjectID) ([]models.Wishlist, error) {
	return r.filter(func(w models.Wishlist) bool { return w.UserID == userID }), nil
}

func (r wishlistRepository) filter(keep func(models.Wishlist) bool) []models.Wishlist {
	out := []models.Wishlist{}
	for _, w := range r.s.data.Wishlists {
		if keep(w) {
			out = append(out, copyWishlist(w))
		}
	}
	return out
}

func copyWishlist(w models.Wishlist) models.Wishlist {
	w.Items = append([]models.GiftItem{}, w.Items...)
	return w
}

type activityRepository struct{ s *Store }

func (r activityRepository) GetRecentActivities(_ context.Context, limit int) ([]models.Activity, error) {
	return r.filter(func(models.Activity) bool { return true }, limit), nil
}

func (r activityRepository) GetUserActivities(_ context.Context, userID primitive.ObjectID, limit int) ([]models.Activity, error) {
	return r.filter(func(a models.Activity) bool { return a.UserID == userID }, limit), nil
}

func (r activityRepository) filter(keep func(models.Activity) bool, limit int) []models.Activity {
	out := []models.Activity{}
	for _, a := range r.s.data.Activities {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
