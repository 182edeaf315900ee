package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Giftwish/internal/models"
	"github.com/Dias221467/Giftwish/internal/repository"
	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activityDocument is the stored shape of an activity. The payload is kept
// as a loose sub-document keyed by type and turned into a typed variant on read.
type activityDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Actor     string             `bson:"actor"`
	Type      string             `bson:"type"`
	Target    string             `bson:"target,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	Data      activityData       `bson:"data"`
}

type activityData struct {
	Amount   *decimal.Decimal `bson:"amount,omitempty"`
	Currency string           `bson:"currency,omitempty"`
}

func (d activityDocument) toModel() models.Activity {
	return models.Activity{
		ID:        d.ID,
		UserID:    d.UserID,
		Actor:     d.Actor,
		Target:    d.Target,
		Timestamp: d.Timestamp,
		Payload:   models.NewPayload(models.ActivityType(d.Type), d.Data.Amount, d.Data.Currency),
	}
}

func newActivityDocument(a models.Activity) activityDocument {
	doc := activityDocument{
		ID:        a.ID,
		UserID:    a.UserID,
		Actor:     a.Actor,
		Type:      string(a.Type()),
		Target:    a.Target,
		Timestamp: a.Timestamp,
	}
	if p, ok := a.Payload.(models.ContributionPayload); ok {
		amount := p.Amount
		doc.Data = activityData{Amount: &amount, Currency: p.Currency}
	}
	return doc
}

type activityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates an activity repository over the "activities" collection.
func NewActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &activityRepository{collection: collection(db, "activities")}
}

// GetRecentActivities fetches the newest activities across all users.
func (r *activityRepository) GetRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	return r.find(ctx, bson.M{}, limit)
}

// GetUserActivities fetches recent activities of a specific user.
func (r *activityRepository) GetUserActivities(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.Activity, error) {
	return r.find(ctx, bson.M{"user_id": userID}, limit)
}

func (r *activityRepository) find(ctx context.Context, filter bson.M, limit int) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch activities")
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}

	activities := make([]models.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, doc.toModel())
	}
	return activities, nil
}
