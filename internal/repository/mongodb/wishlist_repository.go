package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type wishlistRepository struct {
	collection *mongo.Collection
}

// NewWishlistRepository creates a wishlist repository over the "wishlists" collection.
// Gift items are embedded in their wishlist document.
func NewWishlistRepository(db *mongo.Database) repository.WishlistRepository {
	return &wishlistRepository{collection: collection(db, "wishlists")}
}

func (r *wishlistRepository) GetWishlistByID(ctx context.Context, id primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&wishlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("wishlist %s: %w", id.Hex(), repository.ErrNotFound)
		}
		logger.Log.WithError(err).WithField("wishlist_id", id.Hex()).Error("Failed to find wishlist by ID")
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return &wishlist, nil
}

func (r *wishlistRepository) GetAllWishlists(ctx context.Context) ([]models.Wishlist, error) {
	return r.find(ctx, bson.M{})
}

func (r *wishlistRepository) GetWishlistsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Wishlist, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *wishlistRepository) find(ctx context.Context, filter bson.M) ([]models.Wishlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to query wishlists")
		return nil, fmt.Errorf("failed to get wishlists: %w", err)
	}
	defer cursor.Close(ctx)

	wishlists := []models.Wishlist{}
	for cursor.Next(ctx) {
		var wishlist models.Wishlist
		if err := cursor.Decode(&wishlist); err != nil {
			return nil, fmt.Errorf("failed to decode wishlist: %w", err)
		}
		wishlists = append(wishlists, wishlist)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlists: %w", err)
	}

	return wishlists, nil
}
