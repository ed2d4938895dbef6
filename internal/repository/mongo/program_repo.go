// internal/repository/mongo/program_repo.go
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

type mongoProgramRepository struct {
	collection *mongo.Collection
}

func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(ProgramsCollection),
	}
}

// Create stores a generated program under its own id.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	if program.ID == "" {
		return errors.New("program ID is required")
	}
	// Programs are write-once; the generator's id is the _id
	_, err := r.collection.InsertOne(ctx, program)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *mongoProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetLatestByUser returns the most recently generated program of a user.
func (r *mongoProgramRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.Program, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}) // Newest first
	return r.findOne(ctx, bson.M{"userProfile.userId": userID}, opts)
}

func (r *mongoProgramRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.Program, error) {
	var program domain.Program
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Return the custom repository error for not found
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// EnsureProgramIndexes creates necessary indexes for the programs collection.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userProfile.userId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index(),
	})
	return err
}
