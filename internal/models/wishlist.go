package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist groups gift items owned by one user. Item order is display order.
// Totals are never stored on the document.
type Wishlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CoverURL    string             `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	IsPublic    bool               `bson:"is_public" json:"is_public"`
	Likes       int                `bson:"likes" json:"likes"`
	Items       []GiftItem         `bson:"items" json:"items"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Item returns the gift item with the given ID.
func (w Wishlist) Item(id primitive.ObjectID) (GiftItem, bool) {
	for _, item := range w.Items {
		if item.ID == id {
			return item, true
		}
	}
	return GiftItem{}, false
}
