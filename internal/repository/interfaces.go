package repository

import (
	"context"
	"errors"

	"github.com/Dias221467/Giftwish/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a document does not exist in the data source.
var ErrNotFound = errors.New("not found")

// UserRepository defines read access to user profiles.
type UserRepository interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// WishlistRepository defines read access to wishlists and their embedded items.
type WishlistRepository interface {
	GetWishlistByID(ctx context.Context, id primitive.ObjectID) (*models.Wishlist, error)
	GetAllWishlists(ctx context.Context) ([]models.Wishlist, error)
	GetWishlistsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Wishlist, error)
}

// ActivityRepository defines read access to the activity feed. Results are
// newest first; a limit of zero or less returns everything.
type ActivityRepository interface {
	GetRecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
	GetUserActivities(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.Activity, error)
}
