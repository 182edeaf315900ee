package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a profile in the Giftwish system.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username    string             `bson:"username" json:"username"`
	DisplayName string             `bson:"display_name" json:"display_name"`
	AvatarURL   string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Followers   int                `bson:"followers" json:"followers"`
	Following   int                `bson:"following" json:"following"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Name returns the label used in sentences about the user.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
