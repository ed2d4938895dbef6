package repository

import (
	"context"

	"alcyxob/fitness-program/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository stores onboarding leads together with their assessment.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateFitnessProfile(ctx context.Context, id primitive.ObjectID, profile domain.FitnessProfile) error
	UpdateEquipment(ctx context.Context, id primitive.ObjectID, equipment []string) error
	UpdateInjuries(ctx context.Context, id primitive.ObjectID, injuries []domain.InjuryRecord) error
}

// ExerciseRepository is the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.ExerciseRecord) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseRecord, error)
	// ListCatalog returns every record in a stable order (insertion order).
	// Selection tie-breaks depend on it.
	ListCatalog(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// ProgramRepository stores generated programs. Programs are immutable once
// written.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	GetLatestByUser(ctx context.Context, userID string) (*domain.Program, error)
}

// DeliveryRepository is the per-day email delivery log.
type DeliveryRepository interface {
	// Record upserts the outcome for one program day.
	Record(ctx context.Context, rec *domain.DeliveryRecord) error
	ListByProgram(ctx context.Context, programID string) ([]domain.DeliveryRecord, error)
}

// FunnelEventRepository is the append-only log of onboarding funnel steps.
type FunnelEventRepository interface {
	Record(ctx context.Context, event *domain.FunnelEvent) error
	// ListByUser returns the events of one user, oldest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.FunnelEvent, error)
}
