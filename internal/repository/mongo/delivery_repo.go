package mongo

import (
	"context"
	"errors"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDeliveryRepository struct {
	collection *mongo.Collection
}

func NewMongoDeliveryRepository(db *mongo.Database) repository.DeliveryRepository {
	return &mongoDeliveryRepository{
		collection: db.Collection(DeliveriesCollection),
	}
}

// Record upserts by "<programID>:<day>", so re-dispatching a program
// overwrites the earlier outcome instead of duplicating it.
func (r *mongoDeliveryRepository) Record(ctx context.Context, rec *domain.DeliveryRecord) error {
	if rec.ID == "" {
		return errors.New("delivery record ID is required")
	}
	// Upsert: insert on first dispatch, replace on any later one
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, options.Replace().SetUpsert(true))
	return err
}

// ListByProgram returns the log of one program ordered by day.
func (r *mongoDeliveryRepository) ListByProgram(ctx context.Context, programID string) ([]domain.DeliveryRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	filter := bson.M{"programId": programID}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Ensure cursor is closed

	records := []domain.DeliveryRecord{} // Empty list, never nil
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureDeliveryIndexes creates necessary indexes for the deliveries collection.
func EnsureDeliveryIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "programId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index(),
		},
		{
			// Find failed sends for retries
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
