// Package mockdata holds the built-in demo dataset served by the memory
// data source and loaded into MongoDB by cmd/seed.
package mockdata

import (
	"time"

	"github.com/Dias221467/Giftwish/internal/feed"
	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dataset is a complete snapshot of users, wishlists and activities.
type Dataset struct {
	Users      []models.User
	Wishlists  []models.Wishlist
	Activities []models.Activity
}

var (
	UserAnna = mustID("65f1a0c2e4b0a1b2c3d4e001")
	UserMax  = mustID("65f1a0c2e4b0a1b2c3d4e002")
	UserKate = mustID("65f1a0c2e4b0a1b2c3d4e003")

	WishlistBirthday   = mustID("65f1a0c2e4b0a1b2c3d4e101")
	WishlistNewHome    = mustID("65f1a0c2e4b0a1b2c3d4e102")
	WishlistTravel     = mustID("65f1a0c2e4b0a1b2c3d4e103")
	WishlistGraduation = mustID("65f1a0c2e4b0a1b2c3d4e104")

	ItemMacBook   = mustID("65f1a0c2e4b0a1b2c3d4e201")
	ItemHeadphone = mustID("65f1a0c2e4b0a1b2c3d4e202")
	ItemKindle    = mustID("65f1a0c2e4b0a1b2c3d4e203")
	ItemCoffee    = mustID("65f1a0c2e4b0a1b2c3d4e204")
	ItemVacuum    = mustID("65f1a0c2e4b0a1b2c3d4e205")
	ItemBackpack  = mustID("65f1a0c2e4b0a1b2c3d4e206")
	ItemCamera    = mustID("65f1a0c2e4b0a1b2c3d4e207")
)

// Default returns a fresh copy of the demo dataset.
func Default() Dataset {
	return Dataset{
		Users:      users(),
		Wishlists:  wishlists(),
		Activities: activities(),
	}
}

func users() []models.User {
	return []models.User{
		{
			ID:          UserAnna,
			Username:    "anna.petrova",
			DisplayName: "Anna Petrova",
			AvatarURL:   "https://images.example.com/avatars/anna.jpg",
			Bio:         "Designer, runner, collector of good headphones",
			Followers:   248,
			Following:   180,
			CreatedAt:   mustTime("2023-06-12T09:00:00Z"),
		},
		{
			ID:          UserMax,
			Username:    "max.ivanov",
			DisplayName: "Max Ivanov",
			AvatarURL:   "https://images.example.com/avatars/max.jpg",
			Bio:         "Moving to a new flat this spring",
			Followers:   96,
			Following:   120,
			CreatedAt:   mustTime("2023-09-03T14:30:00Z"),
		},
		{
			ID:          UserKate,
			Username:    "kate.smirnova",
			DisplayName: "Kate Smirnova",
			AvatarURL:   "https://images.example.com/avatars/kate.jpg",
			Followers:   512,
			Following:   75,
			CreatedAt:   mustTime("2022-11-20T18:45:00Z"),
		},
	}
}

func wishlists() []models.Wishlist {
	return []models.Wishlist{
		{
			ID:          WishlistBirthday,
			UserID:      UserAnna,
			Title:       "Birthday 2024",
			Description: "Turning 30 and saying goodbye to my old laptop",
			CoverURL:    "https://images.example.com/covers/birthday.jpg",
			IsPublic:    true,
			Likes:       42,
			CreatedAt:   mustTime("2024-01-10T10:00:00Z"),
			Items: []models.GiftItem{
				{
					ID:            ItemMacBook,
					WishlistID:    WishlistBirthday,
					Title:         `MacBook Pro 14"`,
					Description:   "M3 Pro, 18 GB, space black",
					ImageURL:      "https://images.example.com/items/macbook.jpg",
					Link:          "https://store.example.com/macbook-pro-14",
					CurrentAmount: rub(75000),
					GoalAmount:    rub(189990),
					Contributors:  8,
					CreatedAt:     mustTime("2024-01-10T10:05:00Z"),
				},
				{
					ID:            ItemHeadphone,
					WishlistID:    WishlistBirthday,
					Title:         "Sony WH-1000XM5",
					ImageURL:      "https://images.example.com/items/sony.jpg",
					CurrentAmount: rub(34990),
					GoalAmount:    rub(34990),
					Contributors:  5,
					IsCompleted:   true,
					CreatedAt:     mustTime("2024-01-10T10:07:00Z"),
				},
				{
					ID:            ItemKindle,
					WishlistID:    WishlistBirthday,
					Title:         "Kindle Paperwhite",
					CurrentAmount: rub(3500),
					GoalAmount:    rub(16990),
					Contributors:  2,
					CreatedAt:     mustTime("2024-01-11T08:20:00Z"),
				},
			},
		},
		{
			ID:          WishlistNewHome,
			UserID:      UserMax,
			Title:       "Housewarming",
			Description: "Things for the new flat",
			IsPublic:    true,
			Likes:       17,
			CreatedAt:   mustTime("2024-02-01T12:00:00Z"),
			Items: []models.GiftItem{
				{
					ID:            ItemCoffee,
					WishlistID:    WishlistNewHome,
					Title:         "De'Longhi coffee machine",
					CurrentAmount: rub(52000),
					GoalAmount:    rub(45000),
					Contributors:  9,
					CreatedAt:     mustTime("2024-02-01T12:10:00Z"),
				},
				{
					ID:            ItemVacuum,
					WishlistID:    WishlistNewHome,
					Title:         "Robot vacuum",
					CurrentAmount: rub(0),
					GoalAmount:    rub(29990),
					CreatedAt:     mustTime("2024-02-02T09:00:00Z"),
				},
			},
		},
		{
			ID:          WishlistTravel,
			UserID:      UserKate,
			Title:       "Trip to Altai",
			IsPublic:    true,
			Likes:       63,
			CreatedAt:   mustTime("2024-02-20T16:00:00Z"),
			Items: []models.GiftItem{
				{
					ID:            ItemBackpack,
					WishlistID:    WishlistTravel,
					Title:         "Osprey hiking backpack",
					CurrentAmount: rub(8000),
					GoalAmount:    rub(24500),
					Contributors:  3,
					IsCompleted:   true,
					CreatedAt:     mustTime("2024-02-20T16:05:00Z"),
				},
				{
					ID:            ItemCamera,
					WishlistID:    WishlistTravel,
					Title:         "GoPro HERO12",
					CurrentAmount: rub(12000),
					GoalAmount:    rub(42990),
					Contributors:  4,
					CreatedAt:     mustTime("2024-02-21T11:30:00Z"),
				},
			},
		},
		{
			ID:        WishlistGraduation,
			UserID:    UserKate,
			Title:     "Graduation",
			IsPublic:  false,
			CreatedAt: mustTime("2024-03-01T08:00:00Z"),
			Items:     []models.GiftItem{},
		},
	}
}

func activities() []models.Activity {
	contribution := func(amount int64) models.ActivityPayload {
		return models.ContributionPayload{Amount: rub(amount)}
	}

	return []models.Activity{
		{
			ID:        mustID("65f1a0c2e4b0a1b2c3d4e301"),
			UserID:    UserMax,
			Actor:     "Max Ivanov",
			Target:    `MacBook Pro 14"`,
			Timestamp: mustTime("2024-03-14T18:30:00Z"),
			Payload:   contribution(5000),
		},
		{
			ID:        mustID("65f1a0c2e4b0a1b2c3d4e302"),
			UserID:    UserAnna,
			Actor:     "Anna Petrova",
			Target:    "Sony WH-1000XM5",
			Timestamp: mustTime("2024-03-14T09:15:00Z"),
			Payload:   models.GoalReachedPayload{},
		},
		{
			ID:        mustID("65f1a0c2e4b0a1b2c3d4e303"),
			UserID:    UserKate,
			Actor:     "Kate Smirnova",
			Target:    "Trip to Altai",
			Timestamp: mustTime("2024-03-12T16:00:00Z"),
			Payload:   models.WishlistCreatedPayload{},
		},
		{
			ID:        mustID("65f1a0c2e4b0a1b2c3d4e304"),
			UserID:    UserKate,
			Actor:     "Kate Smirnova",
			Target:    "GoPro HERO12",
			Timestamp: mustTime("2024-03-11T11:30:00Z"),
			Payload:   models.ItemAddedPayload{},
		},
		{
			ID:        mustID("65f1a0c2e4b0a1b2c3d4e305"),
			UserID:    UserAnna,
			Actor:     "Anna Petrova",
			Target:    "De'Longhi coffee machine",
			Timestamp: mustTime("2024-03-02T20:45:00Z"),
			Payload:   contribution(12000),
		},
	}
}

func rub(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func mustTime(iso string) time.Time {
	t, err := feed.ParseTimestamp(iso)
	if err != nil {
		panic(err)
	}
	return t
}
