package mongodb

import (
	"context"
	"fmt"

	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seed replaces the contents of the users, wishlists and activities
// collections with the given dataset.
func Seed(ctx context.Context, db *mongo.Database, data mockdata.Dataset) error {
	users := make([]interface{}, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, u)
	}
	wishlists := make([]interface{}, 0, len(data.Wishlists))
	for _, w := range data.Wishlists {
		wishlists = append(wishlists, w)
	}
	activities := make([]interface{}, 0, len(data.Activities))
	for _, a := range data.Activities {
		activities = append(activities, newActivityDocument(a))
	}

	for _, batch := range []struct {
		name string
		docs []interface{}
	}{
		{"users", users},
		{"wishlists", wishlists},
		{"activities", activities},
	} {
		coll := collection(db, batch.name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", batch.name, err)
		}
		if len(batch.docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, batch.docs); err != nil {
			return fmt.Errorf("failed to insert %s: %w", batch.name, err)
		}
		logger.Log.WithFields(logrus.Fields{
			"collection": batch.name,
			"count":      len(batch.docs),
		}).Info("Collection seeded")
	}
	return nil
}
