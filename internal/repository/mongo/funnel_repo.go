package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoFunnelEventRepository implements repository.FunnelEventRepository using MongoDB.
type mongoFunnelEventRepository struct {
	collection *mongo.Collection
}

// NewMongoFunnelEventRepository creates a new instance of mongoFunnelEventRepository.
func NewMongoFunnelEventRepository(db *mongo.Database) repository.FunnelEventRepository {
	return &mongoFunnelEventRepository{
		collection: db.Collection(FunnelEventsCollection),
	}
}

// Record appends one funnel event. Events are never updated.
func (r *mongoFunnelEventRepository) Record(ctx context.Context, event *domain.FunnelEvent) error {
	if event.UserID.IsZero() || event.Type == "" {
		return errors.New("funnel event user ID and type are required")
	}

	event.ID = primitive.NewObjectID() // Generate new ObjectID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// ListByUser returns the funnel history of one user, oldest first.
func (r *mongoFunnelEventRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.FunnelEvent, error) {
	filter := bson.M{"userId": userID}
	// _id breaks ties between events written in the same millisecond
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Always close the cursor

	events := []domain.FunnelEvent{} // Empty slice rather than nil for JSON
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EnsureFunnelEventIndexes creates necessary indexes for the funnel_events collection.
func EnsureFunnelEventIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Per-user history lookups
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
		{
			// Funnel conversion queries count by step
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
