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

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(ExercisesCollection),
	}
}

// Create inserts a new exercise into the catalog.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.ExerciseRecord) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	// The ObjectID doubles as the catalog position, see ListCatalog
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		// Names are unique across the catalog
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseRecord, error) {
	var exercise domain.ExerciseRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound // Use custom error
		}
		return nil, err
	}
	return &exercise, nil
}

// ListCatalog returns the full catalog sorted by _id. ObjectIDs start with
// their creation second, so this is insertion order and identical on every
// call.
func (r *mongoExerciseRepository) ListCatalog(ctx context.Context) ([]domain.ExerciseRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	// Empty filter matches the whole catalog
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Important to close the cursor

	exercises := []domain.ExerciseRecord{} // Initialize as empty slice, not nil
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	// Check for errors that occurred during iteration
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Catalog browsing by category
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "subcategory", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
