package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Collection names.
const (
	UsersCollection        = "users"
	ExercisesCollection    = "exercises"
	ProgramsCollection     = "programs"
	DeliveriesCollection   = "deliveries"
	FunnelEventsCollection = "funnel_events"
)

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The initial connection can succeed while the server is unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}
	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. Failures are
// returned per collection so the caller can log them and keep serving.
func EnsureIndexes(ctx context.Context, db *mongo.Database) map[string]error {
	errs := map[string]error{}
	for name, ensure := range map[string]func(context.Context, *mongo.Collection) error{
		UsersCollection:        EnsureUserIndexes,
		ExercisesCollection:    EnsureExerciseIndexes,
		ProgramsCollection:     EnsureProgramIndexes,
		DeliveriesCollection:   EnsureDeliveryIndexes,
		FunnelEventsCollection: EnsureFunnelEventIndexes,
	} {
		if err := ensure(ctx, db.Collection(name)); err != nil {
			errs[name] = err
		}
	}
	return errs
}
