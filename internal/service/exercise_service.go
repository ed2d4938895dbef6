package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseService administers the exercise catalog.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise domain.ExerciseRecord) (*domain.ExerciseRecord, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.ExerciseRecord, error)
	ListCatalog(ctx context.Context) ([]domain.ExerciseRecord, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise validates and stores a catalog entry. Difficulty must be
// 1-5 and the category must be non-empty; any category text is accepted
// since prescriptions treat unknown categories as strength.
func (s *exerciseService) CreateExercise(ctx context.Context, exercise domain.ExerciseRecord) (*domain.ExerciseRecord, error) {
	exercise.Name = strings.TrimSpace(exercise.Name)
	exercise.Category = strings.ToLower(strings.TrimSpace(exercise.Category))
	exercise.Subcategory = strings.ToLower(strings.TrimSpace(exercise.Subcategory))

	if exercise.Name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	if exercise.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidationFailed)
	}
	if exercise.DifficultyLevel < 1 || exercise.DifficultyLevel > 5 {
		return nil, fmt.Errorf("%w: difficulty level must be between 1 and 5", ErrValidationFailed)
	}
	if exercise.EstimatedCaloriesPerMinute < 0 {
		return nil, fmt.Errorf("%w: calories per minute cannot be negative", ErrValidationFailed)
	}
	exercise.EquipmentRequired = domain.NewEquipmentSet(trimAll(exercise.EquipmentRequired)...).Tokens()

	exerciseID, err := s.exerciseRepo.Create(ctx, &exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	return s.GetExerciseByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.ExerciseRecord, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) ListCatalog(ctx context.Context) ([]domain.ExerciseRecord, error) {
	return s.exerciseRepo.ListCatalog(ctx)
}
