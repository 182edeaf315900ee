package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType names a feed event.
type ActivityType string

const (
	ActivityWishlistCreated  ActivityType = "wishlist_created"
	ActivityItemAdded        ActivityType = "item_added"
	ActivityContributionMade ActivityType = "contribution_made"
	ActivityGoalReached      ActivityType = "goal_reached"
)

// Known reports whether t is one of the event types the feed understands.
func (t ActivityType) Known() bool {
	switch t {
	case ActivityWishlistCreated, ActivityItemAdded, ActivityContributionMade, ActivityGoalReached:
		return true
	}
	return false
}

// ActivityPayload is the type-specific part of an activity. The set of
// implementations is closed; UnknownPayload carries types this build does
// not know about.
type ActivityPayload interface {
	ActivityType() ActivityType
}

type WishlistCreatedPayload struct{}

type ItemAddedPayload struct{}

// ContributionPayload is the only payload that carries money.
type ContributionPayload struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"` // ISO 4217, empty means feed default
}

type GoalReachedPayload struct{}

// UnknownPayload keeps the raw type of an event added after this build.
type UnknownPayload struct {
	Type ActivityType `json:"-"`
}

func (WishlistCreatedPayload) ActivityType() ActivityType { return ActivityWishlistCreated }
func (ItemAddedPayload) ActivityType() ActivityType       { return ActivityItemAdded }
func (ContributionPayload) ActivityType() ActivityType    { return ActivityContributionMade }
func (GoalReachedPayload) ActivityType() ActivityType     { return ActivityGoalReached }
func (p UnknownPayload) ActivityType() ActivityType       { return p.Type }

// NewPayload builds the payload variant for a decoded activity type. The
// amount and currency are only consulted for contributions; a contribution
// without an amount gets zero.
func NewPayload(t ActivityType, amount *decimal.Decimal, currency string) ActivityPayload {
	switch t {
	case ActivityWishlistCreated:
		return WishlistCreatedPayload{}
	case ActivityItemAdded:
		return ItemAddedPayload{}
	case ActivityContributionMade:
		p := ContributionPayload{Amount: decimal.Zero, Currency: currency}
		if amount != nil {
			p.Amount = *amount
		}
		return p
	case ActivityGoalReached:
		return GoalReachedPayload{}
	default:
		return UnknownPayload{Type: t}
	}
}

// Activity is one entry of the social feed.
type Activity struct {
	ID        primitive.ObjectID
	UserID    primitive.ObjectID
	Actor     string
	Target    string
	Timestamp time.Time
	Payload   ActivityPayload
}

// Type returns the event type carried by the payload.
func (a Activity) Type() ActivityType {
	if a.Payload == nil {
		return ""
	}
	return a.Payload.ActivityType()
}

// MarshalJSON flattens the payload next to its type tag.
func (a Activity) MarshalJSON() ([]byte, error) {
	var data ActivityPayload
	if p, ok := a.Payload.(ContributionPayload); ok {
		data = p
	}
	return json.Marshal(struct {
		ID        primitive.ObjectID `json:"id"`
		UserID    primitive.ObjectID `json:"user_id"`
		Type      ActivityType       `json:"type"`
		Actor     string             `json:"actor"`
		Target    string             `json:"target,omitempty"`
		Timestamp time.Time          `json:"timestamp"`
		Data      ActivityPayload    `json:"data,omitempty"`
	}{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type(),
		Actor:     a.Actor,
		Target:    a.Target,
		Timestamp: a.Timestamp,
		Data:      data,
	})
}
