package service

import (
	"context"
	"testing"

	"alcyxob/fitness-program/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateExercise(t *testing.T) {
	repo := &fakeExerciseRepo{}
	svc := NewExerciseService(repo)

	got, err := svc.CreateExercise(context.Background(), domain.ExerciseRecord{
		Name:              " Goblet Squat ",
		Category:          "Strength",
		Subcategory:       "Lower",
		DifficultyLevel:   2,
		EquipmentRequired: []string{"Dumbbells", "dumbbells"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Goblet Squat", got.Name)
	assert.Equal(t, "strength", got.Category)
	assert.Equal(t, "lower", got.Subcategory)
	assert.Equal(t, []string{"dumbbells"}, got.EquipmentRequired)
	assert.Equal(t, fixedNow, got.CreatedAt)

	catalog, err := svc.ListCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog, 1)
}

func TestCreateExerciseValidation(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{})
	ctx := context.Background()

	for _, rec := range []domain.ExerciseRecord{
		{Category: "strength", DifficultyLevel: 2},
		{Name: "Plank", DifficultyLevel: 2},
		{Name: "Plank", Category: "strength", DifficultyLevel: 0},
		{Name: "Plank", Category: "strength", DifficultyLevel: 6},
		{Name: "Plank", Category: "strength", DifficultyLevel: 1, EstimatedCaloriesPerMinute: -1},
	} {
		_, err := svc.CreateExercise(ctx, rec)
		assert.ErrorIs(t, err, ErrValidationFailed, rec.Name)
	}
}

func TestCreateExerciseDuplicate(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{})
	rec := domain.ExerciseRecord{Name: "Plank", Category: "strength", DifficultyLevel: 1}

	_, err := svc.CreateExercise(context.Background(), rec)
	require.NoError(t, err)
	_, err = svc.CreateExercise(context.Background(), rec)
	assert.ErrorIs(t, err, ErrExerciseExists)
}

func TestGetExerciseByIDNotFound(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{})
	_, err := svc.GetExerciseByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
