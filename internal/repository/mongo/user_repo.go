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

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(UsersCollection),
	}
}

// Create inserts a new user into the database.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	// Basic presence check; format validation belongs in the service layer
	if user.Email == "" || user.FullName == "" {
		return primitive.NilObjectID, errors.New("user email and full name are required")
	}

	user.ID = primitive.NewObjectID() // Generate new ObjectID
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// Email carries a unique index
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err // Return other insertion errors
	}

	// Assert the type of the inserted ID
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	// Emails are stored lowercased by the service
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Return the repository error so callers can tell a new lead apart
			return nil, repository.ErrNotFound
		}
		return nil, err // Return other errors
	}
	return &user, nil
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateFitnessProfile replaces the embedded assessment answers.
func (r *mongoUserRepository) UpdateFitnessProfile(ctx context.Context, id primitive.ObjectID, profile domain.FitnessProfile) error {
	return r.set(ctx, id, bson.M{"fitnessProfile": profile})
}

// UpdateEquipment replaces the equipment token list.
func (r *mongoUserRepository) UpdateEquipment(ctx context.Context, id primitive.ObjectID, equipment []string) error {
	return r.set(ctx, id, bson.M{"equipment": equipment})
}

func (r *mongoUserRepository) UpdateInjuries(ctx context.Context, id primitive.ObjectID, injuries []domain.InjuryRecord) error {
	return r.set(ctx, id, bson.M{"injuries": injuries})
}

// set applies a $set to one user and bumps updatedAt.
func (r *mongoUserRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	// Use $set so untouched onboarding phases are kept
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	// ModifiedCount is 0 when the values were unchanged, which is fine.
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true), // One lead per email
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(), // Newest leads first
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err // Returns error if index creation fails
}
