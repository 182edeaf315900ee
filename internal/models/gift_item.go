package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GiftItem is a single wish inside a wishlist that friends can chip in for.
type GiftItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WishlistID    primitive.ObjectID `bson:"wishlist_id" json:"wishlist_id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Link          string             `bson:"link,omitempty" json:"link,omitempty"`
	CurrentAmount decimal.Decimal    `bson:"current_amount" json:"current_amount"`
	GoalAmount    decimal.Decimal    `bson:"goal_amount" json:"goal_amount"`
	Contributors  int                `bson:"contributors" json:"contributors"`
	IsCompleted   bool               `bson:"is_completed" json:"is_completed"` // stored flag, see Completed
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Funded reports whether the raised amount has reached the goal.
func (i GiftItem) Funded() bool {
	return i.GoalAmount.IsPositive() && i.CurrentAmount.GreaterThanOrEqual(i.GoalAmount)
}

// Completed is the display completion state: the stored flag wins when set,
// otherwise the amounts decide.
func (i GiftItem) Completed() bool {
	return i.IsCompleted || i.Funded()
}

// FlagMismatch reports a stored completion flag that disagrees with the amounts.
func (i GiftItem) FlagMismatch() bool {
	return i.IsCompleted != i.Funded()
}
